package hydraulics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a surveyed ground point: X is the horizontal offset and Y the
// elevation.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// P is shorthand for Point{x, y}.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return r2.Norm(r2.Sub(q.vec(), p.vec()))
}

// PolygonArea uses the shoelace formula over the closed polygon.
func PolygonArea(vertices []Point) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}

	var signedArea float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		signedArea += r2.Cross(vertices[i].vec(), vertices[j].vec())
	}

	return math.Abs(signedArea) / 2
}

// PolylineLength sums the segment lengths of an open chain. The closing
// segment back to the first vertex is not counted, so for a clipped
// channel section the water surface is left out of the wetted perimeter.
func PolylineLength(vertices []Point) float64 {
	var length float64
	for i := 0; i < len(vertices)-1; i++ {
		length += vertices[i].DistanceTo(vertices[i+1])
	}
	return length
}

func scalePoints(pts []Point, f float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X * f, Y: p.Y * f}
	}
	return out
}
