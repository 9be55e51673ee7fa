package tiling

import (
	"fmt"

	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/solver"
)

// Build expands tiles into their oriented variants, lifts the neighbor
// list into a compatibility table, and returns a reusable Model. Building
// is separate from Generate so the same lifted table can be solved
// repeatedly with different seeds.
// Complexity: O(tiles*orientations*side^2 + neighbors*8 + oriented^2*4).
func Build[S Symbol](tiles []Tile[S], cfg Config) (*Model[S], error) {
	if cfg.OutHeight <= 0 || cfg.OutWidth <= 0 {
		return nil, fmt.Errorf("tiling.Build: %w", ErrInvalidDimensions)
	}

	ot, err := expandTiles(tiles)
	if err != nil {
		return nil, fmt.Errorf("tiling.Build: %w", err)
	}

	compat, err := liftNeighbors(tiles, cfg.Neighbors, ot)
	if err != nil {
		return nil, fmt.Errorf("tiling.Build: %w", err)
	}

	return &Model[S]{ot: ot, compat: compat, config: cfg}, nil
}

// Generate solves m with the given seed and renders the result back to a
// symbol grid. Returns solver.ErrContradiction if the wave contradicts;
// the caller may retry with a new seed.
// Complexity: dominated by Solver.Run.
func (m *Model[S]) Generate(seed solver.Seed) (*grid2d.Grid2D[S], error) {
	s, err := solver.New(m.config.OutHeight, m.config.OutWidth, m.ot.weights, m.compat, m.config.Periodic, seed)
	if err != nil {
		return nil, fmt.Errorf("tiling.Generate: %w", err)
	}

	ids, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("tiling.Generate: %w", err)
	}

	return Render(ids, m.ot)
}

// Generate is the one-shot convenience entry point: build a Model from
// tiles and cfg, then solve it once with seed.
func Generate[S Symbol](tiles []Tile[S], cfg Config, seed solver.Seed) (*grid2d.Grid2D[S], error) {
	model, err := Build(tiles, cfg)
	if err != nil {
		return nil, err
	}

	return model.Generate(seed)
}
