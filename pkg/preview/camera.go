package preview

import (
	"math"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// DefaultFrustumSize is the height of the visible area in world units
const DefaultFrustumSize = 7.0

// Camera is an orthographic camera orbiting a target
type Camera struct {
	Position    geometry.Vector3
	Target      geometry.Vector3
	Up          geometry.Vector3
	FrustumSize float64 // Visible height in world units
	Distance    float64
	RotationX   float64 // Rotation around X axis (vertical)
	RotationY   float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a camera on the +Z axis looking at the origin
func NewCamera(distance, frustumSize float64) *Camera {
	c := &Camera{
		Target:      geometry.Origin,
		Up:          geometry.NewVector3(0, 1, 0),
		FrustumSize: frustumSize,
		Distance:    distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Calculate position based on spherical coordinates
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Project maps a 3D point to screen coordinates and its depth along the
// view direction
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Orthographic projection keeps the frustum height fixed
	scale := height / c.FrustumSize
	screenX := x*scale + width/2
	screenY := -y*scale + height/2

	return screenX, screenY, z
}
