package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// WriteASCII writes the model in the ASCII STL format
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.TrimSpace(m.Name)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(t.Normal))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// WriteBinary writes the model in the binary STL format. Coordinates are
// stored as float32 as the format requires.
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, binaryHeaderSize)
	copy(header, m.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range m.Triangles {
		record := binaryTriangle{
			Normal:   toFloat32(t.Normal),
			Vertices: [3][3]float32{toFloat32(t.V1), toFloat32(t.V2), toFloat32(t.V3)},
		}
		if err := binary.Write(bw, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("%e %e %e", v.X, v.Y, v.Z)
}
