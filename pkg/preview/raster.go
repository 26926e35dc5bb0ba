package preview

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel coordinates plus view depth
type screenPoint struct {
	X, Y, Z float64
}

// canvas is an RGBA image with a depth buffer
type canvas struct {
	img    *image.RGBA
	depth  []float64
	width  int
	height int
}

func newCanvas(width, height int, background color.RGBA) *canvas {
	c := &canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float64, width*height),
		width:  width,
		height: height,
	}
	for i := range c.depth {
		c.depth[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.img.SetRGBA(x, y, background)
		}
	}
	return c
}

// plot sets a pixel if it passes the depth test, closer meaning smaller z
func (c *canvas) plot(x, y int, z float64, col color.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	idx := y*c.width + x
	if z <= c.depth[idx] {
		c.depth[idx] = z
		c.img.SetRGBA(x, y, col)
	}
}

// fillTriangle fills a triangle with the scanline algorithm, interpolating
// depth along each span
func (c *canvas) fillTriangle(a, b, p screenPoint, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > p.Y {
		b, p = p, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	edges := [3][2]screenPoint{{a, b}, {b, p}, {a, p}}

	yStart := int(math.Max(0, math.Ceil(a.Y)))
	yEnd := int(math.Min(float64(c.height-1), p.Y))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		var xs, zs [2]float64
		found := 0
		for _, e := range edges {
			from, to := e[0], e[1]
			if from.Y == to.Y || fy < from.Y || fy > to.Y || found == 2 {
				continue
			}
			t := (fy - from.Y) / (to.Y - from.Y)
			xs[found] = from.X + t*(to.X-from.X)
			zs[found] = from.Z + t*(to.Z-from.Z)
			found++
		}
		if found < 2 {
			continue
		}

		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
			zs[0], zs[1] = zs[1], zs[0]
		}

		xStart := int(math.Max(0, math.Ceil(xs[0])))
		xEnd := int(math.Min(float64(c.width-1), xs[1]))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xs[1] != xs[0] {
				t = (float64(x) - xs[0]) / (xs[1] - xs[0])
			}
			c.plot(x, y, zs[0]+t*(zs[1]-zs[0]), col)
		}
	}
}

// drawLine draws a line using Bresenham's algorithm. Lines are drawn
// without a depth test so outlines stay visible over filled facets.
func (c *canvas) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy
	for {
		if x1 >= 0 && x1 < c.width && y1 >= 0 && y1 < c.height {
			c.img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
