package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// EdgeInfo contains information about an edge of a facet
type EdgeInfo struct {
	Start   geometry.Vector3
	End     geometry.Vector3
	Length  float64
	FacetID int
}

// Report contains various measurements of a facet list
type Report struct {
	FacetCount      int
	BoundingBox     geometry.BoundingBox
	Dimensions      geometry.Vector3
	TotalArea       float64
	MinArea         float64
	MaxArea         float64
	AvgArea         float64
	EdgeCount       int
	MinEdge         float64
	MaxEdge         float64
	AvgEdge         float64
	MinRadius       float64
	MaxRadius       float64
	AvgRadius       float64
	MinCircumradius float64
	MaxCircumradius float64
	MaxCircleError  float64
	VertexCount     int
	UniqueVertices  int
	AllEdges        []EdgeInfo
}

// AnalyzeFacets measures areas, edges and vertex radii of the facets.
// Radii are measured from the world origin.
func AnalyzeFacets(facets []geometry.Pentagon) *Report {
	r := &Report{
		FacetCount:  len(facets),
		BoundingBox: geometry.BoundsOf(facets),
		AllEdges:    make([]EdgeInfo, 0, len(facets)*5),
	}
	r.Dimensions = r.BoundingBox.Size()
	if len(facets) == 0 {
		return r
	}

	r.MinArea, r.MinEdge, r.MinRadius = math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	r.MinCircumradius = math.MaxFloat64
	totalEdge, totalRadius := 0.0, 0.0
	keys := make(map[VertexKey]struct{})

	for i, facet := range facets {
		area := facet.Area()
		r.TotalArea += area
		r.MinArea = math.Min(r.MinArea, area)
		r.MaxArea = math.Max(r.MaxArea, area)

		if fit, err := facet.Circumcircle(); err == nil {
			r.MinCircumradius = math.Min(r.MinCircumradius, fit.Radius)
			r.MaxCircumradius = math.Max(r.MaxCircumradius, fit.Radius)
			r.MaxCircleError = math.Max(r.MaxCircleError, fit.StdDev)
		}

		for j, v := range facet {
			next := facet[(j+1)%len(facet)]
			length := v.Distance(next)
			r.AllEdges = append(r.AllEdges, EdgeInfo{Start: v, End: next, Length: length, FacetID: i})
			totalEdge += length
			r.MinEdge = math.Min(r.MinEdge, length)
			r.MaxEdge = math.Max(r.MaxEdge, length)

			radius := v.Length()
			totalRadius += radius
			r.MinRadius = math.Min(r.MinRadius, radius)
			r.MaxRadius = math.Max(r.MaxRadius, radius)

			keys[KeyOf(v)] = struct{}{}
			r.VertexCount++
		}
	}

	r.AvgArea = r.TotalArea / float64(r.FacetCount)
	r.EdgeCount = len(r.AllEdges)
	r.AvgEdge = totalEdge / float64(r.EdgeCount)
	r.AvgRadius = totalRadius / float64(r.VertexCount)
	r.UniqueVertices = len(keys)
	return r
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(r *Report, count int) []EdgeInfo {
	return sortedEdges(r, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(r *Report, count int) []EdgeInfo {
	return sortedEdges(r, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

// FindEdgesByLength returns the edges with a length in [minLength, maxLength]
func FindEdgesByLength(r *Report, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range r.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

func sortedEdges(r *Report, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(r.AllEdges))
	copy(edges, r.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
