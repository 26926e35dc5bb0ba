package geometry

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitCircleRegularPentagon(t *testing.T) {
	fit, err := regularPentagon(2, 1).Circumcircle()
	require.NoError(t, err)

	assert.True(t, fit.Center.ApproxEqual(NewVector3(0, 0, 1), 1e-12), "center %v", fit.Center)
	assert.InDelta(t, 2, fit.Radius, 1e-12)
	assert.InDelta(t, 1, math.Abs(fit.Normal.Z), 1e-12)
	assert.InDelta(t, 0, fit.StdDev, 1e-12)
}

func TestFitCircleTilted(t *testing.T) {
	var p Pentagon
	axis := NewVector3(1, 1, 0)
	for i, v := range regularPentagon(1.5, 0) {
		p[i] = RotateAbout(v, Origin, axis, 0.7).Add(NewVector3(3, -2, 5))
	}

	fit, err := p.Circumcircle()
	require.NoError(t, err)
	assert.True(t, fit.Center.ApproxEqual(NewVector3(3, -2, 5), 1e-9), "center %v", fit.Center)
	assert.InDelta(t, 1.5, fit.Radius, 1e-9)
	assert.InDelta(t, 0, fit.StdDev, 1e-9)
}

func TestFitCircleIrregular(t *testing.T) {
	p := regularPentagon(1, 0)
	p[1] = p[1].Mul(1.2)

	fit, err := p.Circumcircle()
	require.NoError(t, err)
	assert.Greater(t, fit.StdDev, 0.01)
}

func TestFitCircleDegenerate(t *testing.T) {
	_, err := FitCircle([]Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0)})
	assert.True(t, errors.Is(err, ErrDegenerateFace))

	_, err = FitCircle([]Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(2, 0, 0)})
	assert.True(t, errors.Is(err, ErrDegenerateFace))
}
