package stl

import (
	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromFacets fans every facet into three triangles
func FromFacets(name string, facets []geometry.Pentagon) *Model {
	m := &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0, len(facets)*3),
	}
	for _, f := range facets {
		m.Triangles = append(m.Triangles, geometry.Fan(f.Polygon())...)
	}
	return m
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
