package overlapping

import (
	"fmt"

	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/solver"
)

// Build extracts patterns from input and precomputes their compatibility,
// producing a reusable Model. Building is separate from Generate so a
// Model can be solved multiple times (different seeds, RunWithRetries)
// without re-extracting patterns; the compatibility table may also be
// shared across concurrent solvers.
// Complexity: O(H*W*symmetry*N^2 + patterns^2*4*N^2).
func Build[S Symbol](input *grid2d.Grid2D[S], cfg Config) (*Model[S], error) {
	if cfg.PatternSize > cfg.OutHeight || cfg.PatternSize > cfg.OutWidth {
		return nil, fmt.Errorf("overlapping.Build: %w", ErrPatternTooLarge)
	}

	patterns, weights, err := ExtractPatterns(input, cfg)
	if err != nil {
		return nil, fmt.Errorf("overlapping.Build: %w", err)
	}

	groundID := -1
	if cfg.Ground {
		groundID, err = FindGroundPattern(input, patterns, cfg.PatternSize, cfg.PeriodicInput)
		if err != nil {
			return nil, fmt.Errorf("overlapping.Build: %w", err)
		}
	}

	return &Model[S]{
		patterns:    patterns,
		weights:     weights,
		compat:      BuildCompatTable(patterns),
		patternSize: cfg.PatternSize,
		config:      cfg,
		groundID:    groundID,
	}, nil
}

// solveShape returns the dimensions the Solver actually operates over:
// the full output shape when PeriodicOutput, otherwise the smaller
// "origin grid" shape Render expands back out to OutHeight x OutWidth.
func (m *Model[S]) solveShape() (height, width int) {
	if m.config.PeriodicOutput {
		return m.config.OutHeight, m.config.OutWidth
	}

	return m.config.OutHeight - m.patternSize + 1, m.config.OutWidth - m.patternSize + 1
}

// Generate solves m with the given seed and renders the result back to a
// symbol grid. Returns solver.ErrContradiction
// if the wave contradicts; the caller may retry with a new seed.
// Complexity: dominated by Solver.Run.
func (m *Model[S]) Generate(seed solver.Seed) (*grid2d.Grid2D[S], error) {
	height, width := m.solveShape()

	s, err := solver.New(height, width, m.weights, m.compat, m.config.PeriodicOutput, seed)
	if err != nil {
		return nil, fmt.Errorf("overlapping.Generate: %w", err)
	}

	if m.config.Ground {
		if err := ApplyGroundPins(s.Propagator(), m.groundID, height, width, len(m.patterns)); err != nil {
			return nil, fmt.Errorf("overlapping.Generate: %w", err)
		}
	}

	ids, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("overlapping.Generate: %w", err)
	}

	return Render(ids, m.patterns, m.patternSize, m.config)
}

// Generate is the one-shot convenience entry point: build a Model from
// input and cfg, then solve it once with seed.
func Generate[S Symbol](input *grid2d.Grid2D[S], cfg Config, seed solver.Seed) (*grid2d.Grid2D[S], error) {
	model, err := Build(input, cfg)
	if err != nil {
		return nil, err
	}

	return model.Generate(seed)
}
