package raster

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/jmylchreest/ngon/internal/colour"
	"github.com/jmylchreest/ngon/internal/geometry"
)

// MarkerRadius is the radius of the filled disc drawn at each vertex by
// Markers.
const MarkerRadius = 3

// Project maps a Y-up vertex to canvas pixel coordinates. The polygon
// origin lands on the canvas centre and the Y axis is flipped, so positive
// Y points towards the top of the image.
func (c *Canvas) Project(v geometry.Vertex) image.Point {
	cx, cy := c.Centre()
	return image.Point{
		X: cx + int(math.Round(v.X)),
		Y: cy - int(math.Round(v.Y)),
	}
}

// projectAll projects every vertex of a polygon.
func (c *Canvas) projectAll(p *geometry.Polygon) []image.Point {
	points := make([]image.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		points[i] = c.Project(v)
	}
	return points
}

// Polygon draws the polygon outline: each consecutive edge plus the
// wraparound edge from the last vertex back to the first.
func (c *Canvas) Polygon(p *geometry.Polygon, col colour.RGB, width int) {
	points := c.projectAll(p)
	for _, e := range p.Edges() {
		a, b := points[e[0]], points[e[1]]
		c.Line(a.X, a.Y, b.X, b.Y, col, width)
	}
}

// FillPolygon fills the polygon interior using an even-odd scanline sweep,
// then draws the outline so the boundary matches the outline-only path.
func (c *Canvas) FillPolygon(p *geometry.Polygon, col colour.RGB) {
	points := c.projectAll(p)

	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points[1:] {
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	for y := minY; y <= maxY; y++ {
		var xs []float64
		for _, e := range p.Edges() {
			a, b := points[e[0]], points[e[1]]
			if a.Y == b.Y {
				continue
			}
			if (y >= a.Y && y < b.Y) || (y >= b.Y && y < a.Y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.Set(x, y, col)
			}
		}
	}

	c.Polygon(p, col, 1)
}

// Circumcircle draws the outline of the polygon's circumscribed circle.
func (c *Canvas) Circumcircle(p *geometry.Polygon, col colour.RGB) {
	cx, cy := c.Centre()
	c.CircleOutline(cx, cy, int(math.Round(p.Radius)), col)
}

// Markers draws a filled disc at every vertex.
func (c *Canvas) Markers(p *geometry.Polygon, col colour.RGB) {
	for _, pt := range c.projectAll(p) {
		c.Disc(pt.X, pt.Y, MarkerRadius, col)
	}
}

// Labels annotates every vertex with its polygon-space coordinates and
// angle, offset slightly from the vertex so the marker stays visible.
func (c *Canvas) Labels(p *geometry.Polygon, col colour.RGB) {
	points := c.projectAll(p)
	for i, v := range p.Vertices {
		text := fmt.Sprintf("(%.0f, %.0f) / %.1f", v.X, v.Y, v.Angle)
		c.Label(points[i].X+6, points[i].Y-12, text, col)
	}
}
