// Package geometry computes the vertices of regular polygons.
package geometry

import (
	"fmt"
	"math"
)

// Vertex is a single polygon corner in a Y-up coordinate system centred on
// the polygon's origin. Angle is the vertex's polar angle in degrees,
// normalised to [0, 360).
type Vertex struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// Polygon is an ordered, implicitly closed sequence of vertices: the last
// vertex connects back to the first. Consecutive vertices are angularly
// adjacent, so drawing the edges in order yields the outline rather than a
// star polygon.
type Polygon struct {
	Sides    int      `json:"sides"`
	Radius   float64  `json:"radius"`
	Vertices []Vertex `json:"vertices"`
}

// Generate computes the vertices of a regular polygon with the given number
// of sides, inscribed in a circle of the given radius. offsetDeg rotates the
// whole polygon; vertex i sits at angle 360·i/sides + offsetDeg.
//
// The result is deterministic: the same inputs always produce identical
// coordinates.
func Generate(sides int, radius, offsetDeg float64) (*Polygon, error) {
	if sides < 3 {
		return nil, fmt.Errorf("number of sides must be at least 3, got %d", sides)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("size must be a positive number, got %v", radius)
	}

	offsetRad := offsetDeg * math.Pi / 180
	vertices := make([]Vertex, sides)
	for i := range vertices {
		theta := 2*math.Pi*float64(i)/float64(sides) + offsetRad

		deg := math.Mod(theta*180/math.Pi, 360)
		if deg < 0 {
			deg += 360
		}

		vertices[i] = Vertex{
			X:     radius * math.Cos(theta),
			Y:     radius * math.Sin(theta),
			Angle: deg,
		}
	}

	return &Polygon{Sides: sides, Radius: radius, Vertices: vertices}, nil
}

// Edges returns the index pairs of every edge, including the wraparound
// edge from the last vertex back to the first.
func (p *Polygon) Edges() [][2]int {
	edges := make([][2]int, p.Sides)
	for i := range edges {
		edges[i] = [2]int{i, (i + 1) % p.Sides}
	}
	return edges
}

// SideLength returns the length of each polygon side.
func (p *Polygon) SideLength() float64 {
	return 2 * p.Radius * math.Sin(math.Pi/float64(p.Sides))
}
