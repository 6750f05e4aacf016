// Package raster draws polygon scenes onto a pixel canvas and encodes the
// result as an image file.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmylchreest/ngon/internal/colour"
)

// Canvas is a square in-memory pixel grid. It is created filled with a
// background colour, mutated by the drawing primitives, and consumed once
// by the encoder.
type Canvas struct {
	img  *image.RGBA
	size int
}

// New creates a size×size canvas filled with the background colour.
func New(size int, background colour.RGB) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.RGBA()), image.Point{}, draw.Src)
	return &Canvas{img: img, size: size}
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Image returns the underlying image.
func (c *Canvas) Image() image.Image {
	return c.img
}

// Centre returns the canvas centre pixel.
func (c *Canvas) Centre() (int, int) {
	return c.size / 2, c.size / 2
}

// Set writes a single pixel. Writes outside the canvas bounds are dropped.
func (c *Canvas) Set(x, y int, col colour.RGB) {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return
	}
	c.img.SetRGBA(x, y, col.RGBA())
}

// At returns the pixel at (x, y). Out-of-bounds reads return the zero colour.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// plot stamps a pixel, widened to a disc when width > 1.
func (c *Canvas) plot(x, y int, col colour.RGB, width int) {
	if width <= 1 {
		c.Set(x, y, col)
		return
	}
	c.Disc(x, y, width/2, col)
}

// Line scan-converts the segment from (x0, y0) to (x1, y1) using integer
// Bresenham. The stroke is continuous: every integer step along the
// dominant axis has a drawn pixel.
func (c *Canvas) Line(x0, y0, x1, y1 int, col colour.RGB, width int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.plot(x0, y0, col, width)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Disc draws a filled disc of the given radius centred on (cx, cy).
func (c *Canvas) Disc(cx, cy, r int, col colour.RGB) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

// CircleOutline draws a 1px circle outline using the midpoint algorithm.
func (c *Canvas) CircleOutline(cx, cy, r int, col colour.RGB) {
	if r < 0 {
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y, col)
		c.Set(cx+y, cy+x, col)
		c.Set(cx-y, cy+x, col)
		c.Set(cx-x, cy+y, col)
		c.Set(cx-x, cy-y, col)
		c.Set(cx-y, cy-x, col)
		c.Set(cx+y, cy-x, col)
		c.Set(cx+x, cy-y, col)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
