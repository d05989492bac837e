// core/slab/slice.go
// Package slab evaluates candidate membrane slices and optimizes their
// thickness for hydrophobicity enrichment.
package slab

import (
	"errors"
	"fmt"

	"memplane-core/geom"
	"memplane-core/protein"
)

// Score methods.
const (
	MethodSimple = "simple" // unit counts
	MethodASA    = "asa"    // ASA-weighted counts
)

// Starting half-thickness of a slab on each side of its center, in the
// same length units as the residue coordinates (Å for PDB input).
const DefaultThickness = 7.0

var (
	// ErrUnknownMethod rejects a score method outside {simple, asa};
	// the slice state is left untouched.
	ErrUnknownMethod = errors.New("slab: unknown score method")

	// ErrNoHydrophobic reports a zero score denominator: the protein
	// has no exposed hydrophobic residue at all, so no slab can be
	// ranked. Distinct from an empty slice, which simply scores 0.
	ErrNoHydrophobic = errors.New("slab: protein has no exposed hydrophobic residues")
)

// Slice is a candidate membrane slab: the region between two parallel
// planes orthogonal to Normal, at offsets Center-Thickness[0] and
// Center+Thickness[1] along it. Residues and Score are kept consistent
// with the current geometry; any mutation of the geometry goes through
// Thicken (or FindResidues + ComputeScore) before Score is read.
//
// The protein back-reference is shared and read-only: a slice never
// owns or mutates the residue lists it scans.
type Slice struct {
	Center    float64
	Normal    geom.Vector
	Method    string
	Thickness [2]float64 // back, front along the normal
	Residues  []protein.Residue
	Score     float64

	prot *protein.Protein
}

// New builds a slice over prot's exposed residues with the default
// thickness, computes its membership and its initial score. warns
// carries per-residue classification problems; err is non-nil for an
// unknown method or a zero hydrophobic denominator.
func New(prot *protein.Protein, center float64, normal geom.Vector, method string) (*Slice, []error, error) {
	s := &Slice{
		Center:    center,
		Normal:    normal,
		Method:    method,
		Thickness: [2]float64{DefaultThickness, DefaultThickness},
		prot:      prot,
	}
	s.FindResidues()
	warns, err := s.ComputeScore()
	return s, warns, err
}

// Protein returns the shared residue collection the slice scans.
func (s *Slice) Protein() *protein.Protein { return s.prot }

// FindResidues rescans every exposed residue of the protein and fully
// replaces the member list: a residue p belongs to the slab when
// center - back <= normal·p <= center + front. Returns the member
// count. O(R) per call; growing either thickness component can only
// add members, never remove them.
func (s *Slice) FindResidues() int {
	s.Residues = s.Residues[:0]
	lo := s.Center - s.Thickness[0]
	hi := s.Center + s.Thickness[1]
	for _, r := range s.prot.Exposed {
		if d := s.Normal.Project(r.Coord); d >= lo && d <= hi {
			s.Residues = append(s.Residues, r)
		}
	}
	return len(s.Residues)
}

// ComputeScore recomputes Score for the current membership.
//
// simple: (hydrophobic members - 0.5*hydrophilic members) divided by
// the exposed hydrophobic count of the whole protein. asa: the same
// formula over summed per-residue ASA. An empty slice short-circuits
// to 0 without touching either formula. Members with an
// unclassifiable code are skipped and surfaced in warns. On error the
// previously stored score is left unchanged.
func (s *Slice) ComputeScore() (warns []error, err error) {
	switch s.Method {
	case MethodSimple, MethodASA:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, s.Method)
	}

	if len(s.Residues) == 0 {
		s.Score = 0
		return nil, nil
	}

	var inside float64
	for _, r := range s.Residues {
		hb, herr := r.Hydrophobic()
		if herr != nil {
			warns = append(warns, herr)
			continue
		}
		w := 1.0
		if s.Method == MethodASA {
			w = r.ASA
		}
		if hb {
			inside += w
		} else {
			inside -= 0.5 * w
		}
	}

	var total float64
	for _, r := range s.prot.ExposedHydrophobic {
		if s.Method == MethodASA {
			total += r.ASA
		} else {
			total++
		}
	}
	if total == 0 {
		return warns, ErrNoHydrophobic
	}

	s.Score = inside / total
	return warns, nil
}

// Thicken grows (or, with a negative increment, shrinks) one side of
// the slab, then refreshes membership and score. An emptied slab
// scores 0.
func (s *Slice) Thicken(increment float64, front bool) ([]error, error) {
	if front {
		s.Thickness[1] += increment
	} else {
		s.Thickness[0] += increment
	}
	if s.FindResidues() == 0 {
		s.Score = 0
		return nil, nil
	}
	return s.ComputeScore()
}

// Less orders slices by score alone.
func (s *Slice) Less(o *Slice) bool { return s.Score < o.Score }

// Best returns the slice with the maximum score, skipping nil entries.
// Ties keep the earliest candidate, which makes the reduction
// deterministic for a fixed sampling order.
func Best(slices []*Slice) *Slice {
	var best *Slice
	for _, s := range slices {
		if s == nil {
			continue
		}
		if best == nil || s.Score > best.Score {
			best = s
		}
	}
	return best
}

func (s *Slice) String() string {
	return fmt.Sprintf("(center: %g, normal: %v, thickness: %g, nb_residues: %d, score: %g)",
		s.Center, s.Normal, s.Thickness[0]+s.Thickness[1], len(s.Residues), s.Score)
}
