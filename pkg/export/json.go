// Package export writes facet lists in debug formats: a JSON coordinate list
// that can be read back, and GeoJSON of the facets seen from the sphere center.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// FormatVersion is written into every JSON document
const FormatVersion = "1"

// Document represents the JSON structure of an exported facet list
type Document struct {
	Version    string        `json:"version"`
	Parameters Parameters    `json:"parameters"`
	Facets     [][]PointData `json:"facets"`
}

// Parameters records how the facets were generated
type Parameters struct {
	Radius       float64   `json:"radius"`
	SphereRadius float64   `json:"sphereRadius,omitempty"`
	SphereCenter []float64 `json:"sphereCenter,omitempty"`
	Depth        int       `json:"depth"`
	Level        int       `json:"level"`
	Projected    bool      `json:"projected"`
}

// PointData represents a 3D point for JSON serialization
type PointData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewDocument converts facets into a JSON document
func NewDocument(params Parameters, facets []geometry.Pentagon) *Document {
	doc := &Document{
		Version:    FormatVersion,
		Parameters: params,
		Facets:     make([][]PointData, len(facets)),
	}
	for i, f := range facets {
		points := make([]PointData, len(f))
		for j, v := range f {
			points[j] = PointData{X: v.X, Y: v.Y, Z: v.Z}
		}
		doc.Facets[i] = points
	}
	return doc
}

// Pentagons converts the document back into facets
func (d *Document) Pentagons() ([]geometry.Pentagon, error) {
	facets := make([]geometry.Pentagon, len(d.Facets))
	for i, points := range d.Facets {
		vertices := make([]geometry.Vector3, len(points))
		for j, p := range points {
			vertices[j] = geometry.NewVector3(p.X, p.Y, p.Z)
		}
		f, err := geometry.NewPentagon(vertices...)
		if err != nil {
			return nil, fmt.Errorf("facet %d: %w", i, err)
		}
		facets[i] = f
	}
	return facets, nil
}

// WriteJSON encodes the document as indented JSON
func WriteJSON(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode facets: %w", err)
	}
	return nil
}

// ReadJSON decodes a document and checks its version
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode facets: %w", err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported facet file version %q", doc.Version)
	}
	return &doc, nil
}

// LoadJSON reads a document from a file
func LoadJSON(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadJSON(file)
}
