package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // Standard deviation of fit (quality measure)
}

// FitCircle fits a circle to points lying roughly in a common plane. The
// circle passes through the first, middle and last point, measured in the
// plane given by the polygon normal:
//
//	D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
//
// StdDev measures the distance of all points to the circle, including their
// offset from the plane.
func FitCircle(points []Vector3) (*CircleFit, error) {
	normal, err := Normal(points)
	if err != nil {
		return nil, err
	}
	origin, err := Centroid(points)
	if err != nil {
		return nil, err
	}

	// In-plane basis
	u := points[0].Sub(origin)
	u = u.Sub(normal.Mul(u.Dot(normal))).Normalize()
	w := normal.Cross(u)

	to2D := func(p Vector3) (float64, float64) {
		d := p.Sub(origin)
		return d.Dot(u), d.Dot(w)
	}

	x1, y1 := to2D(points[0])
	x2, y2 := to2D(points[len(points)/2])
	x3, y3 := to2D(points[len(points)-1])

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < 1e-10 {
		return nil, errors.Wrap(ErrDegenerateFace, "points are collinear")
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	cx := (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D
	cy := (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D

	center := origin.Add(u.Mul(cx)).Add(w.Mul(cy))
	radius := math.Hypot(x1-cx, y1-cy)

	var sumError float64
	for _, p := range points {
		d := p.Sub(center)
		h := d.Dot(normal)
		inPlane := d.Sub(normal.Mul(h)).Length()
		e := math.Hypot(inPlane-radius, h)
		sumError += e * e
	}

	return &CircleFit{
		Center: center,
		Radius: radius,
		Normal: normal,
		StdDev: math.Sqrt(sumError / float64(len(points))),
	}, nil
}

// Circumcircle fits a circle through the vertices of the pentagon
func (p Pentagon) Circumcircle() (*CircleFit, error) {
	return FitCircle(p[:])
}
