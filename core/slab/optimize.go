// core/slab/optimize.go
package slab

import "gonum.org/v1/gonum/floats"

// Optimizer defaults.
const (
	DefaultIncrement = 1.0
	DefaultMaxSteps  = 200
	PlateauWindow    = 5
)

// StopFunc inspects the scores recorded so far for one side (oldest
// first, current last) and reports whether the directional search
// should stop early.
type StopFunc func(scores []float64) bool

// Plateau returns a StopFunc that stops once the last window recorded
// scores are all identical: further extension is not adding residues
// that change the score. The same rule applies to both sides of the
// slab.
func Plateau(window int) StopFunc {
	return func(scores []float64) bool {
		if len(scores) <= window {
			return false
		}
		last := scores[len(scores)-1]
		for _, v := range scores[len(scores)-window:] {
			if v != last {
				return false
			}
		}
		return true
	}
}

// MaximiseScore greedily grows the slab along its normal to maximize
// the score, front side first then back side, with default increment,
// plateau rule and iteration cap. Each side settles on the thickness
// that scored highest among those explored; a side is never left below
// its starting thickness, and the final score is never lower than the
// initial one.
func (s *Slice) MaximiseScore() ([]error, error) {
	return s.Maximise(DefaultIncrement, Plateau(PlateauWindow), DefaultMaxSteps)
}

// Maximise is MaximiseScore with an explicit increment, stop predicate
// and per-side iteration cap. The cap bounds work on a direction that
// never plateaus; stop may be nil to rely on the cap alone.
func (s *Slice) Maximise(increment float64, stop StopFunc, maxSteps int) ([]error, error) {
	var warns []error
	for _, front := range []bool{true, false} {
		w, err := s.maximiseSide(front, increment, stop, maxSteps)
		warns = append(warns, w...)
		if err != nil {
			return warns, err
		}
	}
	return warns, nil
}

// maximiseSide explores successively thicker slabs on one side and
// backtracks to the best one. scores[i] is the score recorded at i
// increments above the starting thickness; after the loop the slab
// sits len(scores) increments above it, so the backtrack distance is
// len(scores)-argmax increments.
func (s *Slice) maximiseSide(front bool, increment float64, stop StopFunc, maxSteps int) ([]error, error) {
	scores := []float64{s.Score}

	warns, err := s.Thicken(increment, front)
	if err != nil {
		return warns, err
	}

	// A zero score means the slab emptied (past the molecular extent);
	// there is nothing left to explore on this side.
	for steps := 0; s.Score != 0 && steps < maxSteps; steps++ {
		scores = append(scores, s.Score)
		w, terr := s.Thicken(increment, front)
		warns = append(warns, w...)
		if terr != nil {
			return warns, terr
		}
		if stop != nil && stop(scores) {
			break
		}
	}

	best := floats.MaxIdx(scores)
	back := float64(len(scores)-best) * increment
	w, err := s.Thicken(-back, front)
	warns = append(warns, w...)
	return warns, err
}
