package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// ErrInvalidSize is returned for non-positive image dimensions
var ErrInvalidSize = errors.New("invalid image size")

// cameraDistance places the camera well outside the unit-scale model
const cameraDistance = 10.0

var (
	// BackgroundColor is the clear color of the preview
	BackgroundColor = color.RGBA{0x11, 0x11, 0x11, 0xff}
	// LineColor is the outline color
	LineColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Options configures a preview rendering
type Options struct {
	Width       int
	Height      int
	FrustumSize float64 // defaults to DefaultFrustumSize when zero
	RotationX   float64 // radians
	RotationY   float64 // radians
	// Fill shades facets and hides outlines of facets turned away from the camera
	Fill bool
}

// DefaultOptions returns an 800x800 outline rendering
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      800,
		FrustumSize: DefaultFrustumSize,
	}
}

// Render draws every facet as a closed outline
func Render(facets []geometry.Pentagon, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", opts.Width, opts.Height)
	}
	frustum := opts.FrustumSize
	if frustum <= 0 {
		frustum = DefaultFrustumSize
	}

	camera := NewCamera(cameraDistance, frustum)
	camera.Rotate(opts.RotationX, opts.RotationY)

	c := newCanvas(opts.Width, opts.Height, BackgroundColor)
	w, h := float64(opts.Width), float64(opts.Height)

	project := func(v geometry.Vector3) screenPoint {
		x, y, z := camera.Project(v, w, h)
		return screenPoint{X: x, Y: y, Z: z}
	}

	for _, f := range facets {
		var points [5]screenPoint
		for i, v := range f {
			points[i] = project(v)
		}

		if opts.Fill {
			facing, brightness := shade(f, camera)
			if !facing {
				continue
			}
			col := color.RGBA{brightness, brightness, brightness, 0xff}
			for i := 1; i < 4; i++ {
				c.fillTriangle(points[0], points[i], points[i+1], col)
			}
		}

		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			c.drawLine(round(a.X), round(a.Y), round(b.X), round(b.Y), LineColor)
		}
	}

	return c.img, nil
}

// shade reports whether the outward side of the facet faces the camera and
// a gray level proportional to the angle between its normal and the view
func shade(f geometry.Pentagon, camera *Camera) (bool, uint8) {
	n, err := f.Normal()
	if err != nil {
		return false, 0
	}
	centroid := f.Centroid()
	if n.Dot(centroid) < 0 {
		n = n.Mul(-1)
	}

	toCamera := camera.Position.Sub(centroid).Normalize()
	cos := n.Dot(toCamera)
	if cos <= 0 {
		return false, 0
	}
	return true, uint8(math.Max(40, math.Min(200, 40+cos*160)))
}

func round(v float64) int {
	return int(math.Round(v))
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG renders the facets and writes the PNG to filename
func SavePNG(filename string, facets []geometry.Pentagon, opts Options) error {
	img, err := Render(facets, opts)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := WritePNG(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
