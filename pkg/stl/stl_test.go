package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
	"github.com/philipparndt/dodecasphere/pkg/polyhedron"
)

func dodecahedron() *Model {
	faces := polyhedron.BaseFaces(2)
	return FromFacets("dodecahedron", faces[:])
}

func assertSameTriangles(t *testing.T, expected, actual []geometry.Triangle, tol float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		e, a := expected[i], actual[i]
		assert.True(t, e.Normal.ApproxEqual(a.Normal, tol), "triangle %d normal", i)
		assert.True(t, e.V1.ApproxEqual(a.V1, tol), "triangle %d v1", i)
		assert.True(t, e.V2.ApproxEqual(a.V2, tol), "triangle %d v2", i)
		assert.True(t, e.V3.ApproxEqual(a.V3, tol), "triangle %d v3", i)
	}
}

func TestFromFacets(t *testing.T) {
	m := dodecahedron()
	faces := polyhedron.BaseFaces(2)

	assert.Equal(t, 36, m.TriangleCount())
	total := 0.0
	for _, f := range faces {
		total += f.Area()
	}
	assert.InDelta(t, total, m.SurfaceArea(), 1e-9)
}

func TestASCIIRoundTrip(t *testing.T) {
	m := dodecahedron()
	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, m))

	assert.True(t, strings.HasPrefix(buf.String(), "solid dodecahedron\n"))

	parsed, err := ParseReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "dodecahedron", parsed.Name)
	assertSameTriangles(t, m.Triangles, parsed.Triangles, 1e-5)
}

func TestBinaryRoundTrip(t *testing.T) {
	m := dodecahedron()
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, m))
	assert.Equal(t, 84+50*36, buf.Len())

	parsed, err := ParseReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "dodecahedron", parsed.Name)
	assertSameTriangles(t, m.Triangles, parsed.Triangles, 1e-6)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteBinary(file, dodecahedron()))
	require.NoError(t, file.Close())

	parsed, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 36, parsed.TriangleCount())

	_, err = Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestParseEmptyASCII(t *testing.T) {
	parsed, err := ParseReader(strings.NewReader("solid empty\nendsolid empty\n"))
	require.NoError(t, err)
	assert.Equal(t, "empty", parsed.Name)
	assert.Zero(t, parsed.TriangleCount())
}

func TestParseMalformedASCII(t *testing.T) {
	cases := map[string]string{
		"bad vertex":  "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 zero\n",
		"short facet": "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid x\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseReader(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestParseTruncatedBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, dodecahedron()))

	_, err := ParseReader(bytes.NewReader(buf.Bytes()[:200]))
	assert.Error(t, err)

	_, err = ParseReader(bytes.NewReader([]byte{1, 2}))
	assert.Error(t, err)
}
