package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	expected := NewVector3(0, 0, 1)
	if normal := tri.CalculateNormal(); !normal.ApproxEqual(expected, 1e-10) {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestFan(t *testing.T) {
	p := regularPentagon(1, 0)
	triangles := Fan(p.Polygon())

	if len(triangles) != 3 {
		t.Fatalf("Fan failed: expected 3 triangles, got %d", len(triangles))
	}

	total := 0.0
	for _, tri := range triangles {
		total += tri.Area()
		if tri.V1 != p[0] {
			t.Errorf("Fan failed: expected shared vertex %v, got %v", p[0], tri.V1)
		}
		if math.Abs(tri.Normal.Z-1) > 1e-10 {
			t.Errorf("Fan failed: expected normal +Z, got %v", tri.Normal)
		}
	}
	if math.Abs(total-p.Area()) > 1e-10 {
		t.Errorf("Fan failed: expected area %v, got %v", p.Area(), total)
	}

	if Fan(Polygon{p[0], p[1]}) != nil {
		t.Errorf("Fan failed: expected no triangles for two points")
	}
}
