package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	result := NewVector3(0, 0, 0).Normalize()

	if result != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: expected zero vector, got %v", result)
	}
}

func TestMidpoint(t *testing.T) {
	result := Midpoint(NewVector3(1, 2, 3), NewVector3(3, 6, -3))

	expected := NewVector3(2, 4, 0)
	if result != expected {
		t.Errorf("Midpoint failed: expected %v, got %v", expected, result)
	}
}

func TestMoveAwayFrom(t *testing.T) {
	result := MoveAwayFrom(Origin, NewVector3(0, 2, 0), 0.5)

	expected := NewVector3(0, 2.5, 0)
	if !result.ApproxEqual(expected, 1e-10) {
		t.Errorf("MoveAwayFrom failed: expected %v, got %v", expected, result)
	}
}

func TestMoveCloserTo(t *testing.T) {
	// The displacement is applied to the target, not the origin
	result := MoveCloserTo(NewVector3(1, 0, 0), NewVector3(4, 0, 0), 0.5)

	expected := NewVector3(3.5, 0, 0)
	if !result.ApproxEqual(expected, 1e-10) {
		t.Errorf("MoveCloserTo failed: expected %v, got %v", expected, result)
	}
}

func TestMoveCloserToOvershoot(t *testing.T) {
	// A delta larger than the distance moves past the origin
	result := MoveCloserTo(Origin, NewVector3(0, 0, 1), 3)

	expected := NewVector3(0, 0, -2)
	if !result.ApproxEqual(expected, 1e-10) {
		t.Errorf("MoveCloserTo overshoot failed: expected %v, got %v", expected, result)
	}
}

func TestRotateAbout(t *testing.T) {
	pivot := NewVector3(1, 1, 0)
	result := RotateAbout(NewVector3(2, 1, 0), pivot, NewVector3(0, 0, 2), math.Pi/2)

	expected := NewVector3(1, 2, 0)
	if !result.ApproxEqual(expected, 1e-10) {
		t.Errorf("RotateAbout failed: expected %v, got %v", expected, result)
	}
}

func TestRotateAboutHalfTurn(t *testing.T) {
	pivot := NewVector3(0, 0, 5)
	p := NewVector3(3, -4, 5)
	result := RotateAbout(p, pivot, NewVector3(0, 0, 1), math.Pi)

	// A half turn about the normal reflects in-plane points through the pivot
	expected := pivot.Mul(2).Sub(p)
	if !result.ApproxEqual(expected, 1e-10) {
		t.Errorf("RotateAbout half turn failed: expected %v, got %v", expected, result)
	}
}
