package analysis

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// Coverage describes how much of a sphere a facet list covers once every
// vertex is seen from the sphere center
type Coverage struct {
	// SolidAngle is the covered area of the unit sphere in steradians
	SolidAngle float64
	// Area is the covered area of the sphere with the given radius
	Area float64
	// Fraction is SolidAngle relative to the whole sphere
	Fraction float64
	// MinFacet and MaxFacet are the smallest and largest facet solid angles
	MinFacet float64
	MaxFacet float64
}

// SphericalCoverage fans every facet into geodesic triangles on the unit
// sphere around center and sums their areas
func SphericalCoverage(facets []geometry.Pentagon, center geometry.Vector3, radius float64) Coverage {
	var c Coverage
	if len(facets) == 0 {
		return c
	}

	c.MinFacet = math.MaxFloat64
	for _, f := range facets {
		a := FacetSolidAngle(f, center)
		c.SolidAngle += a
		c.MinFacet = math.Min(c.MinFacet, a)
		c.MaxFacet = math.Max(c.MaxFacet, a)
	}
	c.Area = c.SolidAngle * radius * radius
	c.Fraction = c.SolidAngle / (4 * math.Pi)
	return c
}

// FacetSolidAngle returns the solid angle a facet subtends from center
func FacetSolidAngle(f geometry.Pentagon, center geometry.Vector3) float64 {
	var points [5]s2.Point
	for i, v := range f {
		points[i] = toPoint(v.Sub(center))
	}
	total := 0.0
	for i := 1; i < len(points)-1; i++ {
		total += s2.PointArea(points[0], points[i], points[i+1])
	}
	return total
}

// LatLng returns the latitude and longitude of a vertex, in degrees, seen
// from center
func LatLng(v, center geometry.Vector3) (lat, lng float64) {
	ll := s2.LatLngFromPoint(toPoint(v.Sub(center)))
	return ll.Lat.Degrees(), ll.Lng.Degrees()
}

func toPoint(v geometry.Vector3) s2.Point {
	return s2.PointFromCoords(v.X, v.Y, v.Z)
}
