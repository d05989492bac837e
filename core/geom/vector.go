// core/geom/vector.go
package geom

import "fmt"

// Vector is a directed segment from Start to End. The membrane search
// uses vectors anchored at the coordinate-system origin as candidate
// slab normals. Start is stored per instance so unrelated vectors never
// alias a shared origin value.
type Vector struct {
	Start Point
	End   Point
}

// NewVector returns a vector from the origin to end.
func NewVector(end Point) Vector { return Vector{End: end} }

// Dir returns the end point expressed relative to the start.
func (v Vector) Dir() Point { return v.End.Sub(v.Start) }

// Project returns the scalar projection of p onto the (unnormalized)
// vector direction: Dir · (p - Start).
func (v Vector) Project(p Point) float64 { return v.Dir().Dot(p.Sub(v.Start)) }

func (v Vector) String() string { return fmt.Sprintf("(start: %v, end: %v)", v.Start, v.End) }
