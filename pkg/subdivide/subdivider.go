// Package subdivide splits pentagonal facets into an inner pentagon and five
// surrounding petals, and drives that split recursively over a set of faces.
package subdivide

import (
	"math"

	"github.com/pkg/errors"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// ErrInvalidLevel is returned for subdivision levels below 1
var ErrInvalidLevel = errors.New("invalid subdivision level")

// Level is the subdivision tier of a division step, starting at 1
type Level int

// ChildCount is the number of pentagons produced by one division step
const ChildCount = 6

const (
	// deltaDivisor converts a face area into the radial offset of its children
	deltaDivisor = 17.52436972951624
	// firstAreaDivisor is the inner pentagon area ratio of the first level
	firstAreaDivisor = 7.63855
	// areaDivisor is the inner pentagon area ratio of every deeper level
	areaDivisor = 5.63855
)

// AreaRatio returns the area of the inner pentagon relative to its parent
func (l Level) AreaRatio() float64 {
	if l == 1 {
		return 1 / firstAreaDivisor
	}
	return 1 / areaDivisor
}

// Delta returns the default radial offset for a face of the given area
func Delta(area float64) float64 {
	return area / deltaDivisor
}

func (l Level) validate() error {
	if l < 1 {
		return errors.Wrapf(ErrInvalidLevel, "level %d", l)
	}
	return nil
}

// Subdivide splits a face into its inner pentagon followed by five petals,
// offsetting the new vertices by the area-derived default delta.
func Subdivide(face geometry.Pentagon, level Level) ([ChildCount]geometry.Pentagon, error) {
	return SubdivideDelta(face, level, Delta(face.Area()))
}

// SubdivideDelta splits a face like Subdivide using an explicit radial offset.
// The delta is used as given: zero keeps the inner pentagon in the plane of
// its parent instead of falling back to Delta(face.Area()). Use Subdivide for
// the area-derived offset.
func SubdivideDelta(face geometry.Pentagon, level Level, delta float64) ([ChildCount]geometry.Pentagon, error) {
	var children [ChildCount]geometry.Pentagon

	inner, err := Inner(face, level)
	if err != nil {
		return children, err
	}
	for i, v := range inner {
		inner[i] = geometry.MoveAwayFrom(geometry.Origin, v, delta)
	}
	children[0] = inner

	for i := 0; i < 5; i++ {
		a := face[(i+2)%5]
		b := face[(i+3)%5]
		c := face[(i+4)%5]
		children[i+1] = geometry.Pentagon{
			inner[i],
			geometry.Midpoint(a, b),
			geometry.MoveCloserTo(geometry.Origin, b, delta),
			geometry.Midpoint(b, c),
			inner[(i+1)%5],
		}
	}
	return children, nil
}

// Inner returns the inner pentagon of a face before its radial offset: a copy
// scaled toward the centroid to the level's area ratio, then turned half way
// around the face normal.
func Inner(face geometry.Pentagon, level Level) (geometry.Pentagon, error) {
	var inner geometry.Pentagon
	if err := level.validate(); err != nil {
		return inner, err
	}

	centroid := face.Centroid()
	scale := math.Sqrt(level.AreaRatio())
	for i, v := range face {
		inner[i] = centroid.Add(v.Sub(centroid).Mul(scale))
	}

	normal, err := face.Normal()
	if err != nil {
		return inner, err
	}
	for i, v := range inner {
		inner[i] = geometry.RotateAbout(v, centroid, normal, math.Pi)
	}
	return inner, nil
}
