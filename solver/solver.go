package solver

import (
	"errors"
	"fmt"

	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
	"github.com/procedural-go/wfc/wave"
)

// New builds a Solver over a fresh Propagator of the given dimensions,
// compat table, and wrapping mode, seeded with seed.
// Complexity: O(height*width*patterns), dominated by Propagator.New.
func New(height, width int, weights []float64, compat *propagator.CompatTable, toric bool, seed Seed) (*Solver, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("solver.New(%d,%d): %w", height, width, ErrInvalidDimensions)
	}

	prop, err := propagator.New(height, width, weights, compat, toric)
	if err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}

	return &Solver{
		rng:     NewXorShift128(seed),
		weights: weights,
		prop:    prop,
		dist:    make([]float64, len(weights)),
	}, nil
}

// Propagator exposes the underlying Propagator, for front-ends that need
// to Ban patterns directly (ground pinning, ghost seed cells) before or
// between Step calls.
func (s *Solver) Propagator() *propagator.Propagator { return s.prop }

// Step performs one observe: it asks the wave for its minimum-entropy
// cell, and if one is still undecided, samples a pattern for it weighted
// by the pattern weights among currently allowed patterns, then bans
// every other pattern there.
//
// The returned Status reflects what MinEntropyCell saw *before* this
// step's collapse: Selected means a cell was observed and collapsed this
// call, Finished/Contradiction mean nothing was left to observe.
// Complexity: O(patterns) to sample, plus whatever propagation the bans
// trigger.
func (s *Solver) Step() (wave.Status, error) {
	w := s.prop.Wave()
	obs := w.MinEntropyCell(s.rng)
	if obs.Status != wave.Selected {
		return obs.Status, nil
	}

	n := w.NumPatterns()
	var total float64
	for pat := 0; pat < n; pat++ {
		allowed, err := w.Get(obs.Y, obs.X, pat)
		if err != nil {
			return 0, fmt.Errorf("solver.Step: %w", err)
		}
		if allowed {
			s.dist[pat] = s.weights[pat]
			total += s.dist[pat]
		} else {
			s.dist[pat] = 0
		}
	}

	chosen := weightedSample(s.dist, total, s.rng.Float64())
	for pat := 0; pat < n; pat++ {
		if pat == chosen || s.dist[pat] == 0 {
			continue
		}
		if err := s.prop.Ban(obs.Y, obs.X, pat); err != nil {
			return 0, fmt.Errorf("solver.Step: %w", err)
		}
	}

	return wave.Selected, nil
}

// weightedSample draws one index from dist (a sparse weight vector, zero
// for disallowed patterns) summing to total, using draw in [0,1) as the
// uniform input. Falls back to the last nonzero entry if floating-point
// rounding lets the prefix sum fall just short of draw*total.
func weightedSample(dist []float64, total, draw float64) int {
	target := draw * total
	var running float64
	last := -1
	for i, v := range dist {
		if v == 0 {
			continue
		}
		last = i
		running += v
		if target < running {
			return i
		}
	}

	return last
}

// Run repeats Step until the wave is fully decided or contradicts. On
// success it returns the HxW grid of decided pattern indices; on
// contradiction it returns ErrContradiction.
// Complexity: O(height*width*patterns) amortized, dominated by the total
// propagation work across all steps.
func (s *Solver) Run() (*Output, error) {
	for {
		status, err := s.Step()
		if err != nil {
			return nil, err
		}
		switch status {
		case wave.Finished:
			return s.ToOutput()
		case wave.Contradiction:
			return nil, ErrContradiction
		}
	}
}

// Restart resets the propagator (wave and counters, without reallocating)
// and re-seeds the PRNG, so the Solver can be reused for another attempt
// without rebuilding the compat table.
// Complexity: O(height*width*patterns).
func (s *Solver) Restart(seed Seed) {
	s.prop.Reset()
	s.rng = NewXorShift128(seed)
}

// ToOutput reads back the wave's decided pattern index at every cell. It
// is a programmer error to call this before the wave reports Finished;
// doing so returns ErrUndecidedCell.
// Complexity: O(height*width*patterns).
func (s *Solver) ToOutput() (*Output, error) {
	w := s.prop.Wave()
	out, err := grid2d.New[int](w.Height(), w.Width())
	if err != nil {
		return nil, fmt.Errorf("solver.ToOutput: %w", err)
	}

	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			n, err := w.NumAllowed(y, x)
			if err != nil {
				return nil, fmt.Errorf("solver.ToOutput: %w", err)
			}
			if n != 1 {
				return nil, fmt.Errorf("solver.ToOutput(%d,%d): %w", y, x, ErrUndecidedCell)
			}
			found := -1
			for pat := 0; pat < w.NumPatterns(); pat++ {
				allowed, _ := w.Get(y, x, pat)
				if allowed {
					found = pat
					break
				}
			}
			_ = out.Set(y, x, found)
		}
	}

	return out, nil
}

// RunWithRetries calls Restart(seeds[i]) then Run for each seed in order,
// returning the first successful output along with the (0-based) attempt
// index it succeeded on. Any non-contradiction error aborts immediately.
// If every attempt contradicts, it returns ErrContradiction. The Solver
// itself never retries on its own — retrying is a caller policy; this is
// a convenience wrapper for callers who want a multi-attempt front end.
// Complexity: O(attempts * height*width*patterns) worst case.
func (s *Solver) RunWithRetries(seeds []Seed) (*Output, int, error) {
	if len(seeds) == 0 {
		return nil, 0, ErrNoAttempts
	}

	for attempt, seed := range seeds {
		s.Restart(seed)

		out, err := s.Run()
		if err == nil {
			return out, attempt, nil
		}
		if !errors.Is(err, ErrContradiction) {
			return nil, attempt, err
		}
	}

	return nil, len(seeds), ErrContradiction
}
