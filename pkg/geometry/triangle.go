package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the unit normal from the vertex winding
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return Polygon{t.V1, t.V2, t.V3}.Area()
}

// Fan splits a polygon into triangles sharing vertex 0, each carrying the
// normal of its own winding
func Fan(p Polygon) []Triangle {
	if len(p) < 3 {
		return nil
	}
	triangles := make([]Triangle, 0, len(p)-2)
	for i := 1; i < len(p)-1; i++ {
		t := Triangle{V1: p[0], V2: p[i], V3: p[i+1]}
		t.Normal = t.CalculateNormal()
		triangles = append(triangles, t)
	}
	return triangles
}
