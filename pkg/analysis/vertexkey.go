package analysis

import (
	"math"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// KeyScale is the fixed-point scale of vertex keys: two decimal places
const KeyScale = 100

// VertexKey identifies a vertex position quantized to 1/KeyScale units.
// Vertices that round to the same key share a label.
type VertexKey [3]int64

// KeyOf returns the quantized key of a vertex
func KeyOf(v geometry.Vector3) VertexKey {
	return VertexKey{quantize(v.X), quantize(v.Y), quantize(v.Z)}
}

func quantize(c float64) int64 {
	return int64(math.Round(c * KeyScale))
}

// UniqueVertices returns the distinct vertex positions of the facets in first
// seen order, one per quantized key
func UniqueVertices(facets []geometry.Pentagon) []geometry.Vector3 {
	seen := make(map[VertexKey]struct{})
	var unique []geometry.Vector3
	for _, f := range facets {
		for _, v := range f {
			key := KeyOf(v)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, v)
		}
	}
	return unique
}
