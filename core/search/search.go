// core/search/search.go
// Package search drives the membrane-position estimation: it samples
// candidate normal directions on a hemisphere, builds and optimizes one
// slab per direction, and keeps the best-scoring one.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"memplane-core/geom"
	"memplane-core/protein"
	"memplane-core/slab"
	"memplane-core/sphere"
)

// ErrNoCandidates means every sampled direction failed to score; the
// search has nothing to report.
var ErrNoCandidates = errors.New("search: no candidate direction could be scored")

// Config holds the search parameters.
type Config struct {
	Directions int     // target number of hemisphere normals (approximate)
	Radius     float64 // sampling sphere radius
	Method     string  // slab.MethodASA | slab.MethodSimple
	Increment  float64 // optimizer thickness step
	MaxSteps   int     // optimizer per-side iteration cap
	Window     int     // optimizer plateau window
	Threads    int     // concurrent directions (0 = all CPUs)
}

// Engine runs membrane searches with a fixed config.
type Engine struct {
	cfg Config
}

// New creates an Engine, filling unset config fields with defaults.
func New(cfg Config) *Engine {
	if cfg.Directions <= 0 {
		cfg.Directions = 20
	}
	if cfg.Radius <= 0 {
		cfg.Radius = 1
	}
	if cfg.Method == "" {
		cfg.Method = slab.MethodASA
	}
	if cfg.Increment <= 0 {
		cfg.Increment = slab.DefaultIncrement
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = slab.DefaultMaxSteps
	}
	if cfg.Window <= 0 {
		cfg.Window = slab.PlateauWindow
	}
	return &Engine{cfg: cfg}
}

// Result is the search outcome in the protein's current (recentred)
// coordinate frame.
type Result struct {
	Slice     *slab.Slice
	Evaluated int     // directions that scored successfully
	Warnings  []error // per-direction classification and scoring issues
}

// Search scores one optimized slab per sampled direction, concurrently,
// and reduces to the maximum. Directions are independent: a failing
// one is recorded as a warning and skipped, and the search only fails
// as a whole when no direction scored at all (or the context was
// canceled). The reduction is deterministic: ties keep the direction
// sampled first.
func (e *Engine) Search(ctx context.Context, prot *protein.Protein) (*Result, error) {
	// Half the samples fall on the discarded lower hemisphere, so ask
	// for twice the configured direction count.
	pts, err := sphere.Sphere{Radius: e.cfg.Radius}.SampleSurface(e.cfg.Directions * 2)
	if err != nil {
		return nil, err
	}

	threads := e.cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var (
		mu     sync.Mutex
		warns  []error
		slices = make([]*slab.Slice, len(pts))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, pt := range pts {
		i, pt := i, pt
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, w, serr := e.evaluate(prot, geom.NewVector(pt))
			mu.Lock()
			defer mu.Unlock()
			warns = append(warns, w...)
			if serr != nil {
				warns = append(warns, fmt.Errorf("direction %v: %w", pt, serr))
				return nil
			}
			slices[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Warnings: warns}
	for _, s := range slices {
		if s != nil {
			res.Evaluated++
		}
	}
	if res.Slice = slab.Best(slices); res.Slice == nil {
		return nil, ErrNoCandidates
	}
	return res, nil
}

// evaluate builds and thickness-optimizes the slab for one normal.
func (e *Engine) evaluate(prot *protein.Protein, normal geom.Vector) (*slab.Slice, []error, error) {
	s, warns, err := slab.New(prot, 0, normal, e.cfg.Method)
	if err != nil {
		return nil, warns, err
	}
	w, err := s.Maximise(e.cfg.Increment, slab.Plateau(e.cfg.Window), e.cfg.MaxSteps)
	warns = append(warns, w...)
	if err != nil {
		return nil, warns, err
	}
	return s, warns, nil
}
