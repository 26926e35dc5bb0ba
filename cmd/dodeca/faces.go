package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dodecasphere/pkg/analysis"
	"github.com/philipparndt/dodecasphere/pkg/polyhedron"
)

var facesCmd = &cobra.Command{
	Use:   "faces",
	Short: "Print the base face table of the dodecahedron",
	Long:  "Print the vertex buffer indices and coordinates of the 12 base faces at the configured circumradius.",
	Args:  cobra.NoArgs,
	Run:   runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)
}

func runFaces(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	faces := polyhedron.BaseFaces(cfg.Radius)

	fmt.Println("Dodecahedron Base Faces")
	fmt.Println("=======================")
	fmt.Printf("Circumradius: %.6f units\n", cfg.Radius)
	fmt.Printf("Edge length: %.6f units\n\n", polyhedron.EdgeLength(cfg.Radius))

	for i, face := range faces {
		fmt.Printf("Face %2d  indices %v  area %.6f\n", i, polyhedron.FaceIndices[i], face.Area())
		for j, v := range face {
			fmt.Printf("  %d: %s\n", j, analysis.FormatVector(v))
		}
	}
}
