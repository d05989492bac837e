// core/geom/point.go
package geom

import (
	"errors"
	"fmt"
	"math"
)

// Point is a location in 3D space. Value semantics: every operation
// returns a new Point and never mutates the receiver.
type Point struct {
	X, Y, Z float64
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point { return Point{-p.X, -p.Y, -p.Z} }

// Dot treats both points as vectors from the origin.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Norm is the Euclidean distance from the origin.
func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

// Scale multiplies every component by k.
func (p Point) Scale(k float64) Point { return Point{k * p.X, k * p.Y, k * p.Z} }

// Cross returns the cross product p × q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Unit returns the direction of p with norm 1; the zero point is
// returned unchanged.
func (p Point) Unit() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

func (p Point) String() string { return fmt.Sprintf("[%g, %g, %g]", p.X, p.Y, p.Z) }

// ErrNoPoints is returned by Centroid for an empty point list; there is
// no meaningful zero default.
var ErrNoPoints = errors.New("geom: centroid of empty point list")

// Centroid returns the coordinate-wise mean of pts.
func Centroid(pts []Point) (Point, error) {
	if len(pts) == 0 {
		return Point{}, ErrNoPoints
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	n := float64(len(pts))
	return Point{sum.X / n, sum.Y / n, sum.Z / n}, nil
}
