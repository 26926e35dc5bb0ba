package subdivide

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
	"github.com/philipparndt/dodecasphere/pkg/polyhedron"
)

func baseFaces() []geometry.Pentagon {
	faces := polyhedron.BaseFaces(2)
	return faces[:]
}

func TestBuildCounts(t *testing.T) {
	h, err := Build(baseFaces(), DefaultDepth)
	require.NoError(t, err)

	require.Equal(t, 3, h.Depth())
	assert.Len(t, h.Level(1), 72)
	assert.Len(t, h.Level(2), 432)
	assert.Len(t, h.Level(3), 2592)
	assert.Len(t, h.Leaves(), 2592)
	assert.Equal(t, 2592, LeafCount(polyhedron.FaceCount, DefaultDepth))
	assert.Nil(t, h.Level(4))
	assert.Nil(t, h.Level(0))
}

func TestBuildDeterministic(t *testing.T) {
	first, err := BuildLeaves(baseFaces())
	require.NoError(t, err)
	second, err := BuildLeaves(baseFaces())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildOrder(t *testing.T) {
	faces := baseFaces()
	h, err := Build(faces, DefaultDepth)
	require.NoError(t, err)

	level1, err := Subdivide(faces[0], 1)
	require.NoError(t, err)
	assert.Equal(t, level1[:], h.Level(1)[:ChildCount])

	// The first child is fed forward rotated left by one vertex
	rotated := geometry.Pentagon{level1[0][1], level1[0][2], level1[0][3], level1[0][4], level1[0][0]}
	level2, err := Subdivide(rotated, 2)
	require.NoError(t, err)
	assert.Equal(t, level2[:], h.Level(2)[:ChildCount])

	level3, err := Subdivide(geometry.Pentagon{level2[0][1], level2[0][2], level2[0][3], level2[0][4], level2[0][0]}, 3)
	require.NoError(t, err)
	assert.Equal(t, level3[:], h.Leaves()[:ChildCount])

	// Leaves of the second level 2 pentagon follow the first six
	next, err := Subdivide(feedForward(level2[1]), 3)
	require.NoError(t, err)
	assert.Equal(t, next[:], h.Leaves()[ChildCount:2*ChildCount])
}

func TestBuildGoldenLeaves(t *testing.T) {
	h, err := Build(baseFaces(), DefaultDepth)
	require.NoError(t, err)

	cases := []struct {
		name     string
		got      geometry.Vector3
		expected geometry.Vector3
	}{
		{"level1", h.Level(1)[0][0], geometry.NewVector3(-0.2895311259631739, 1.30642153966546, -1.2758841177576654)},
		{"level2", h.Level(2)[0][0], geometry.NewVector3(-0.1241675434989337, 1.6335921443451742, -0.8087081632792861)},
		{"first leaf", h.Leaves()[0][0], geometry.NewVector3(0.08489004890936143, 1.5633887583359452, -0.9338022769043741)},
		{"last leaf", h.Leaves()[2591][2], geometry.NewVector3(0.6991686936165458, -1.5489676073965035, 0.6902559517519834)},
	}
	for _, tc := range cases {
		assert.True(t, tc.got.ApproxEqual(tc.expected, 1e-9), "%s: expected %v, got %v", tc.name, tc.expected, tc.got)
	}
}

func TestBuildSingleLevel(t *testing.T) {
	h, err := Build(baseFaces()[:1], 1)
	require.NoError(t, err)

	assert.Equal(t, 1, h.Depth())
	assert.Len(t, h.Leaves(), ChildCount)
}

func TestBuildInvalidDepth(t *testing.T) {
	for _, depth := range []int{0, -1, MaxDepth + 1, 24} {
		_, err := Build(baseFaces(), depth)
		require.Error(t, err, "depth %d", depth)
		assert.True(t, errors.Is(err, ErrInvalidLevel), "depth %d", depth)
	}
}

func TestBuildMaxDepth(t *testing.T) {
	h, err := Build(baseFaces()[:1], MaxDepth)
	require.NoError(t, err)
	assert.Len(t, h.Leaves(), LeafCount(1, MaxDepth))
}

func TestBuildDegenerateFace(t *testing.T) {
	faces := append(baseFaces()[:2], geometry.Pentagon{})
	_, err := Build(faces, DefaultDepth)
	require.Error(t, err)
	assert.True(t, errors.Is(err, geometry.ErrDegenerateFace))
	assert.Contains(t, err.Error(), "base face 2")
	assert.Contains(t, err.Error(), "level 1")
}

func TestEmptyHierarchy(t *testing.T) {
	h := &Hierarchy{}
	assert.Nil(t, h.Leaves())
	assert.Zero(t, h.Depth())
}
