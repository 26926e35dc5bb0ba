// Package polyhedron provides the base geometry of the tessellation: the raw
// vertex buffer of a regular dodecahedron and the table that assembles its
// twelve pentagonal faces from that buffer.
package polyhedron

import (
	"math"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// FaceCount is the number of pentagonal faces of a dodecahedron
const FaceCount = 12

// FaceIndices maps every face to five positions in the raw vertex buffer.
// The order of each row defines the winding of the face.
var FaceIndices = [FaceCount][5]int{
	{4, 7, 31, 22, 13},
	{0, 1, 4, 7, 2},
	{1, 9, 10, 13, 4},
	{10, 13, 22, 19, 18},
	{19, 22, 31, 28, 27},
	{28, 31, 7, 2, 40},
	{18, 19, 27, 36, 72},
	{27, 28, 40, 37, 36},
	{37, 40, 2, 0, 64},
	{0, 1, 9, 82, 64},
	{72, 18, 10, 9, 82},
	{37, 36, 72, 82, 64},
}

// canonicalVertices returns the 20 corners of a dodecahedron with edge
// 2/phi centered on the origin
func canonicalVertices() [20]geometry.Vector3 {
	t := (1 + math.Sqrt(5)) / 2
	r := 1 / t
	return [20]geometry.Vector3{
		// (±1, ±1, ±1)
		{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1},
		// (0, ±1/φ, ±φ)
		{X: 0, Y: -r, Z: -t}, {X: 0, Y: -r, Z: t},
		{X: 0, Y: r, Z: -t}, {X: 0, Y: r, Z: t},
		// (±1/φ, ±φ, 0)
		{X: -r, Y: -t, Z: 0}, {X: -r, Y: t, Z: 0},
		{X: r, Y: -t, Z: 0}, {X: r, Y: t, Z: 0},
		// (±φ, 0, ±1/φ)
		{X: -t, Y: 0, Z: -r}, {X: t, Y: 0, Z: -r},
		{X: -t, Y: 0, Z: r}, {X: t, Y: 0, Z: r},
	}
}

// triangles fans every face into three triangles over the canonical vertices
var triangles = [36][3]int{
	{3, 11, 7}, {3, 7, 15}, {3, 15, 13},
	{7, 19, 17}, {7, 17, 6}, {7, 6, 15},
	{17, 4, 8}, {17, 8, 10}, {17, 10, 6},
	{8, 0, 16}, {8, 16, 2}, {8, 2, 10},
	{0, 12, 1}, {0, 1, 18}, {0, 18, 16},
	{6, 10, 2}, {6, 2, 13}, {6, 13, 15},
	{2, 16, 18}, {2, 18, 3}, {2, 3, 13},
	{18, 1, 9}, {18, 9, 11}, {18, 11, 3},
	{4, 14, 12}, {4, 12, 0}, {4, 0, 8},
	{11, 9, 5}, {11, 5, 19}, {11, 19, 7},
	{19, 5, 14}, {19, 14, 4}, {19, 4, 17},
	{1, 12, 14}, {1, 14, 5}, {1, 5, 9},
}

// BufferSize is the number of entries in the raw vertex buffer
const BufferSize = len(triangles) * 3

// Vertices returns the non-indexed vertex buffer of a dodecahedron with the
// given circumradius. Each triangle (a, b, c) contributes b, c, a, projected
// onto the circumsphere, which is the layout FaceIndices was written against.
func Vertices(radius float64) []geometry.Vector3 {
	canonical := canonicalVertices()
	buffer := make([]geometry.Vector3, 0, BufferSize)
	for _, tri := range triangles {
		for _, idx := range [3]int{tri[1], tri[2], tri[0]} {
			buffer = append(buffer, canonical[idx].Normalize().Mul(radius))
		}
	}
	return buffer
}

// BaseFaces assembles the twelve faces of a dodecahedron with the given
// circumradius
func BaseFaces(radius float64) [FaceCount]geometry.Pentagon {
	vertices := Vertices(radius)
	var faces [FaceCount]geometry.Pentagon
	for i, row := range FaceIndices {
		for j, idx := range row {
			faces[i][j] = vertices[idx]
		}
	}
	return faces
}

// EdgeLength returns the edge length of a regular dodecahedron with the
// given circumradius
func EdgeLength(radius float64) float64 {
	return 4 * radius / (math.Sqrt(3) * (1 + math.Sqrt(5)))
}
