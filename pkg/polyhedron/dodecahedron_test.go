package polyhedron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerticesOnCircumsphere(t *testing.T) {
	vertices := Vertices(2)

	require.Len(t, vertices, BufferSize)
	for i, v := range vertices {
		assert.InDelta(t, 2.0, v.Length(), 1e-12, "vertex %d", i)
	}
}

func TestFaceIndicesInRange(t *testing.T) {
	for i, row := range FaceIndices {
		for _, idx := range row {
			assert.True(t, idx >= 0 && idx < BufferSize, "face %d index %d", i, idx)
		}
	}
}

func TestBaseFacesAreRegularPentagons(t *testing.T) {
	faces := BaseFaces(2)
	edge := EdgeLength(2)

	for i, face := range faces {
		for j, l := range face.Polygon().EdgeLengths() {
			assert.InDelta(t, edge, l, 1e-9, "face %d edge %d", i, j)
		}
	}
}

func TestBaseFacesArePlanar(t *testing.T) {
	for i, face := range BaseFaces(2) {
		n, err := face.Normal()
		require.NoError(t, err)

		offset := n.Dot(face[0])
		for j, v := range face {
			assert.InDelta(t, offset, n.Dot(v), 1e-9, "face %d vertex %d", i, j)
		}
		// Every face plane sits at the inradius of the solid
		assert.InDelta(t, 1.5893, math.Abs(offset), 1e-4, "face %d", i)
	}
}

func TestBaseFacesCoverEveryCorner(t *testing.T) {
	seen := make(map[[3]int64]int)
	for _, face := range BaseFaces(2) {
		for _, v := range face {
			key := [3]int64{
				int64(math.Round(v.X * 1e6)),
				int64(math.Round(v.Y * 1e6)),
				int64(math.Round(v.Z * 1e6)),
			}
			seen[key]++
		}
	}

	// 20 corners, each shared by three faces
	assert.Len(t, seen, 20)
	for key, count := range seen {
		assert.Equal(t, 3, count, "corner %v", key)
	}
}

func TestBaseFacesScaleWithRadius(t *testing.T) {
	unit := BaseFaces(1)
	double := BaseFaces(2)

	for i := range unit {
		for j := range unit[i] {
			assert.True(t, unit[i][j].Mul(2).ApproxEqual(double[i][j], 1e-12))
		}
	}
}
