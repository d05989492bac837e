// core/sphere/sphere.go
// Equal-area sampling of directions on a sphere surface (Deserno,
// "How to generate equidistributed points on the surface of a sphere").
package sphere

import (
	"errors"
	"math"

	"memplane-core/geom"
)

// ErrInvalidCount is returned when the requested sample count is not
// strictly positive; no partial sampling is performed.
var ErrInvalidCount = errors.New("sphere: sample count must be positive")

// Sphere is a sphere centered on the coordinate-system origin.
type Sphere struct {
	Radius float64
}

// New returns a unit sphere.
func New() Sphere { return Sphere{Radius: 1} }

// SampleSurface generates approximately n equidistributed points over
// the full sphere surface and keeps those on the upper (z >= 0)
// hemisphere: a normal and its negation define the same slab
// orientation, so the lower half would only duplicate candidates.
// The returned count is close to n/2 but not exact; callers must not
// assume equality.
func (s Sphere) SampleSurface(n int) ([]geom.Point, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	a := 4.0 * math.Pi * s.Radius * s.Radius / float64(n)
	d := math.Sqrt(a)
	mTheta := int(math.Round(math.Pi / d))
	dTheta := math.Pi / float64(mTheta)
	dPhi := a / dTheta

	var pts []geom.Point
	for m := 0; m < mTheta; m++ {
		theta := math.Pi * (float64(m) + 0.5) / float64(mTheta)
		mPhi := int(math.Round(2.0 * math.Pi * math.Sin(theta) / dPhi))
		for i := 0; i < mPhi; i++ {
			phi := 2.0 * math.Pi * float64(i) / float64(mPhi)
			p := geom.Point{
				X: s.Radius * math.Sin(theta) * math.Cos(phi),
				Y: s.Radius * math.Sin(theta) * math.Sin(phi),
				Z: s.Radius * math.Cos(theta),
			}
			if p.Z >= 0 {
				pts = append(pts, p)
			}
		}
	}
	return pts, nil
}
