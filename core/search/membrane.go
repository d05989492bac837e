// core/search/membrane.go
package search

import (
	"memplane-core/geom"
	"memplane-core/protein"
)

// Membrane is the estimated slab expressed for consumers: the normal
// direction, the two bounding-plane offsets along it, and the residues
// found inside. Coordinates are in whatever frame the residues were in
// when the search ran; use Translate to move back to the original
// protein frame after a barycenter recentring.
type Membrane struct {
	Normal     geom.Point
	Center     float64
	Back       float64
	Front      float64
	Score      float64
	Method     string
	Directions int // directions that scored during the search
	Residues   []protein.Residue
}

// Membrane flattens the result's best slice.
func (r *Result) Membrane() Membrane {
	s := r.Slice
	residues := make([]protein.Residue, len(s.Residues))
	copy(residues, s.Residues)
	return Membrane{
		Normal:     s.Normal.Dir(),
		Center:     s.Center,
		Back:       s.Thickness[0],
		Front:      s.Thickness[1],
		Score:      s.Score,
		Method:     s.Method,
		Directions: r.Evaluated,
		Residues:   residues,
	}
}

// Translate returns a copy of the membrane shifted by shift: residue
// coordinates move by shift, and the center offset follows so the
// bounding planes keep enclosing the same points
// (normal·(p+shift) = normal·p + normal·shift).
func (m Membrane) Translate(shift geom.Point) Membrane {
	out := m
	out.Center += m.Normal.Dot(shift)
	out.Residues = make([]protein.Residue, len(m.Residues))
	for i, r := range m.Residues {
		r.Coord = r.Coord.Add(shift)
		out.Residues[i] = r
	}
	return out
}

// Thickness is the total slab thickness.
func (m Membrane) Thickness() float64 { return m.Back + m.Front }
