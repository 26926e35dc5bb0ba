package geometry

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrDegenerateFace is returned when a face has fewer than three vertices
	// or its first three vertices are colinear.
	ErrDegenerateFace = errors.New("degenerate face")
	// ErrEmptyInput is returned when an operation needs at least one point.
	ErrEmptyInput = errors.New("empty input")
)

// normalEpsilon is the smallest cross product magnitude accepted as a normal
const normalEpsilon = 1e-12

// Polygon is an ordered vertex list. Vertex order defines the winding.
type Polygon []Vector3

// Centroid returns the unweighted average of the points
func Centroid(points []Vector3) (Vector3, error) {
	if len(points) == 0 {
		return Vector3{}, ErrEmptyInput
	}
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points))), nil
}

// Normal returns the unit normal of the plane through the first three points
func Normal(points []Vector3) (Vector3, error) {
	if len(points) < 3 {
		return Vector3{}, errors.Wrapf(ErrDegenerateFace, "need 3 vertices for a normal, got %d", len(points))
	}
	cross := points[1].Sub(points[0]).Cross(points[2].Sub(points[0]))
	if cross.Length() < normalEpsilon {
		return Vector3{}, errors.Wrap(ErrDegenerateFace, "colinear vertices")
	}
	return cross.Normalize(), nil
}

// Area returns the surface area using a triangle fan from vertex 0.
// Polygons with fewer than 3 vertices have no area.
func (p Polygon) Area() float64 {
	total := 0.0
	for i := 1; i < len(p)-1; i++ {
		edge1 := p[i].Sub(p[0])
		edge2 := p[i+1].Sub(p[0])
		total += 0.5 * edge1.Cross(edge2).Length()
	}
	return total
}

// SignedArea returns the fan area measured along axis. The sign is positive
// when the winding is counter-clockwise looking down the axis.
func (p Polygon) SignedArea(axis Vector3) float64 {
	n := axis.Normalize()
	total := 0.0
	for i := 1; i < len(p)-1; i++ {
		edge1 := p[i].Sub(p[0])
		edge2 := p[i+1].Sub(p[0])
		total += 0.5 * edge1.Cross(edge2).Dot(n)
	}
	return total
}

// EdgeLengths returns the length of every edge, including the closing edge
func (p Polygon) EdgeLengths() []float64 {
	if len(p) < 2 {
		return nil
	}
	lengths := make([]float64, len(p))
	for i := range p {
		lengths[i] = p[i].Distance(p[(i+1)%len(p)])
	}
	return lengths
}

// Perimeter returns the total length of all edges
func (p Polygon) Perimeter() float64 {
	total := 0.0
	for _, l := range p.EdgeLengths() {
		total += l
	}
	return total
}

// Centroid returns the unweighted vertex average
func (p Polygon) Centroid() (Vector3, error) {
	return Centroid(p)
}

// Normal returns the unit normal of the first three vertices
func (p Polygon) Normal() (Vector3, error) {
	return Normal(p)
}

// Pentagon is a five vertex facet produced at any subdivision level
type Pentagon [5]Vector3

// NewPentagon builds a pentagon from exactly five points
func NewPentagon(points ...Vector3) (Pentagon, error) {
	var p Pentagon
	if len(points) < 3 {
		return p, errors.Wrapf(ErrDegenerateFace, "need 5 vertices, got %d", len(points))
	}
	if len(points) != len(p) {
		return p, errors.Wrapf(ErrDegenerateFace, "pentagon needs 5 vertices, got %d", len(points))
	}
	copy(p[:], points)
	return p, nil
}

// Polygon returns the vertices as a polygon
func (p Pentagon) Polygon() Polygon {
	return Polygon(p[:])
}

// Closed returns the outline with vertex 0 repeated as a sixth point
func (p Pentagon) Closed() []Vector3 {
	closed := make([]Vector3, 0, len(p)+1)
	closed = append(closed, p[:]...)
	return append(closed, p[0])
}

// Area returns the fan area of the pentagon
func (p Pentagon) Area() float64 {
	return p.Polygon().Area()
}

// Centroid returns the unweighted vertex average
func (p Pentagon) Centroid() Vector3 {
	var sum Vector3
	for _, v := range p {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(p)))
}

// Normal returns the unit normal of the first three vertices
func (p Pentagon) Normal() (Vector3, error) {
	return Normal(p[:])
}

// IsFinite reports whether every coordinate is a finite number
func (p Pentagon) IsFinite() bool {
	for _, v := range p {
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
