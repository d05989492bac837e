// core/protein/protein.go
package protein

import (
	"math"

	"memplane-core/geom"
)

// Protein partitions classified residues for the membrane search.
// The three lists are filled once by New and are read-only afterwards;
// slices hand out shared views of Exposed and must not mutate it.
type Protein struct {
	Exposed            []Residue
	Burrowed           []Residue
	ExposedHydrophobic []Residue
}

// New partitions residues into exposed and burrowed sets at the given
// ASA threshold and classifies the exposed ones by hydrophobicity.
// Residues whose code is in neither reference set are reported through
// warn (when non-nil) and left out of the hydrophobic list; they still
// count as exposed.
func New(residues []Residue, threshold float64, warn func(error)) *Protein {
	p := &Protein{}
	for _, r := range residues {
		if !r.Exposed(threshold) {
			p.Burrowed = append(p.Burrowed, r)
			continue
		}
		p.Exposed = append(p.Exposed, r)
		hb, err := r.Hydrophobic()
		if err != nil {
			if warn != nil {
				warn(err)
			}
			continue
		}
		if hb {
			p.ExposedHydrophobic = append(p.ExposedHydrophobic, r)
		}
	}
	return p
}

// Barycenter returns the coordinate-wise mean position of the exposed
// residues. It fails when the protein has no exposed residues.
func (p *Protein) Barycenter() (geom.Point, error) {
	pts := make([]geom.Point, len(p.Exposed))
	for i, r := range p.Exposed {
		pts[i] = r.Coord
	}
	return geom.Centroid(pts)
}

// Recenter translates every residue so the barycenter of the exposed
// residues lands on the origin, a prerequisite for treating planes
// through the origin as central membrane candidates. It returns the
// applied shift; callers reapply its negation to results reported in
// original coordinates.
func (p *Protein) Recenter() (geom.Point, error) {
	bary, err := p.Barycenter()
	if err != nil {
		return geom.Point{}, err
	}
	shift := bary.Neg()
	p.Move(shift)
	return shift, nil
}

// Move translates all residues by shift. The hydrophobic list holds
// copies of exposed residues, so it is shifted too to stay consistent.
func (p *Protein) Move(shift geom.Point) {
	for i := range p.Exposed {
		p.Exposed[i].Coord = p.Exposed[i].Coord.Add(shift)
	}
	for i := range p.Burrowed {
		p.Burrowed[i].Coord = p.Burrowed[i].Coord.Add(shift)
	}
	for i := range p.ExposedHydrophobic {
		p.ExposedHydrophobic[i].Coord = p.ExposedHydrophobic[i].Coord.Add(shift)
	}
}

// Bounds returns the corners of the axis-aligned box enclosing every
// residue, exposed and burrowed alike.
func (p *Protein) Bounds() (min, max geom.Point) {
	min = geom.Point{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = min.Neg()
	for _, list := range [][]Residue{p.Exposed, p.Burrowed} {
		for _, r := range list {
			min.X = math.Min(min.X, r.Coord.X)
			min.Y = math.Min(min.Y, r.Coord.Y)
			min.Z = math.Min(min.Z, r.Coord.Z)
			max.X = math.Max(max.X, r.Coord.X)
			max.Y = math.Max(max.Y, r.Coord.Y)
			max.Z = math.Max(max.Z, r.Coord.Z)
		}
	}
	return min, max
}
