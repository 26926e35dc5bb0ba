// Package sphere clamps facet vertices onto the surface of a sphere.
package sphere

import (
	"math"

	"github.com/pkg/errors"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// ErrInvalidRadius is returned for a sphere radius that is not positive
var ErrInvalidRadius = errors.New("invalid sphere radius")

// Projector casts a ray from Origin through every vertex and moves the vertex
// to where the ray leaves the sphere around Center.
type Projector struct {
	Origin geometry.Vector3
	Center geometry.Vector3
	Radius float64
}

// NewProjector creates a projector for the sphere of the given center and radius
func NewProjector(origin, center geometry.Vector3, radius float64) (*Projector, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, errors.Wrapf(ErrInvalidRadius, "radius %v", radius)
	}
	return &Projector{Origin: origin, Center: center, Radius: radius}, nil
}

// ProjectPoint returns the exit point of the ray from Origin through v, or v
// itself when the ray misses the sphere. With a sphere centered on the ray
// origin every vertex lands at distance Radius along its own direction.
func (p *Projector) ProjectPoint(v geometry.Vector3) geometry.Vector3 {
	direction := v.Sub(p.Origin).Normalize()
	toCenter := p.Center.Sub(p.Origin)

	t := toCenter.Dot(direction)
	closest := p.Origin.Add(direction.Mul(t))
	d := closest.Distance(p.Center)
	if d > p.Radius {
		return v
	}

	offset := math.Sqrt(p.Radius*p.Radius - d*d)
	return closest.Add(direction.Mul(offset))
}

// Project returns a copy of the facet with every vertex projected
func (p *Projector) Project(facet geometry.Pentagon) geometry.Pentagon {
	var projected geometry.Pentagon
	for i, v := range facet {
		projected[i] = p.ProjectPoint(v)
	}
	return projected
}

// ProjectAll projects every facet, keeping their order
func (p *Projector) ProjectAll(facets []geometry.Pentagon) []geometry.Pentagon {
	projected := make([]geometry.Pentagon, len(facets))
	for i, f := range facets {
		projected[i] = p.Project(f)
	}
	return projected
}
