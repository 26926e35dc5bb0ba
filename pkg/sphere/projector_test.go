package sphere

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
	"github.com/philipparndt/dodecasphere/pkg/polyhedron"
	"github.com/philipparndt/dodecasphere/pkg/subdivide"
)

func concentric(t *testing.T, radius float64) *Projector {
	t.Helper()
	p, err := NewProjector(geometry.Origin, geometry.Origin, radius)
	require.NoError(t, err)
	return p
}

func TestProjectPointConcentric(t *testing.T) {
	p := concentric(t, 1.7)

	for _, v := range []geometry.Vector3{
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0.1, 0.2, -0.3),
		geometry.NewVector3(-1, 1, 1),
	} {
		got := p.ProjectPoint(v)
		assert.InDelta(t, 1.7, got.Length(), 1e-12)
		assert.InDelta(t, 1.0, got.Normalize().Dot(v.Normalize()), 1e-12)
	}
}

func TestProjectPointAtOrigin(t *testing.T) {
	p := concentric(t, 1.7)
	assert.Equal(t, geometry.Origin, p.ProjectPoint(geometry.Origin))
}

func TestProjectPointOffsetSphere(t *testing.T) {
	p, err := NewProjector(geometry.Origin, geometry.NewVector3(0, 0, 5), 1)
	require.NoError(t, err)

	hit := p.ProjectPoint(geometry.NewVector3(0, 0, 1))
	assert.True(t, hit.ApproxEqual(geometry.NewVector3(0, 0, 6), 1e-12), "got %v", hit)

	miss := geometry.NewVector3(1, 0, 0)
	assert.Equal(t, miss, p.ProjectPoint(miss))
}

func TestProjectDoesNotMutate(t *testing.T) {
	p := concentric(t, 1)
	facet := polyhedron.BaseFaces(2)[3]
	original := facet

	projected := p.Project(facet)
	assert.Equal(t, original, facet)
	assert.NotEqual(t, facet, projected)
}

func TestProjectAllLeaves(t *testing.T) {
	faces := polyhedron.BaseFaces(2)
	leaves, err := subdivide.BuildLeaves(faces[:])
	require.NoError(t, err)

	projected := concentric(t, 1.7).ProjectAll(leaves)
	require.Len(t, projected, 2592)
	for i, facet := range projected {
		for j, v := range facet {
			assert.InDelta(t, 1.7, v.Length(), 1e-9, "facet %d vertex %d", i, j)
			assert.InDelta(t, 1.0, v.Normalize().Dot(leaves[i][j].Normalize()), 1e-9)
		}
	}

	expected := geometry.NewVector3(0.079161838619355, 1.4578944196256187, -0.8707911715967743)
	assert.True(t, projected[0][0].ApproxEqual(expected, 1e-9), "got %v", projected[0][0])
}

func TestNewProjectorInvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1.7} {
		_, err := NewProjector(geometry.Origin, geometry.Origin, r)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRadius))
	}
}
