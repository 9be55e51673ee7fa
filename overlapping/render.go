package overlapping

import (
	"fmt"

	"github.com/procedural-go/wfc/grid2d"
)

// Render maps a solved grid of pattern ids back to symbols. When
// cfg.PeriodicOutput, ids has shape OutHeight x OutWidth and each cell
// just reads its pattern's (0,0) corner. Otherwise
// ids has the smaller "origin grid" shape (OutHeight-N+1) x
// (OutWidth-N+1); border rows/columns of width N-1 are filled from the
// interior offsets of the last valid origin row/column, which is safe
// precisely because a solved wave's adjacent origin patterns already
// agree on their shared overlap (the same invariant the compat table
// enforces during solving) — so indexing through the last valid origin
// at the appropriate internal offset yields the same symbol a direct
// origin at the border position would have, had one existed.
// Complexity: O(OutHeight*OutWidth).
func Render[S Symbol](ids *grid2d.Grid2D[int], patterns []*grid2d.Grid2D[S], n int, cfg Config) (*grid2d.Grid2D[S], error) {
	out, err := grid2d.New[S](cfg.OutHeight, cfg.OutWidth)
	if err != nil {
		return nil, fmt.Errorf("overlapping.Render: %w", err)
	}

	if cfg.PeriodicOutput {
		for i := 0; i < cfg.OutHeight; i++ {
			for j := 0; j < cfg.OutWidth; j++ {
				id, err := ids.At(i, j)
				if err != nil {
					return nil, fmt.Errorf("overlapping.Render: %w", err)
				}
				sym := patterns[id].MustAt(0, 0)
				if err := out.Set(i, j, sym); err != nil {
					return nil, fmt.Errorf("overlapping.Render: %w", err)
				}
			}
		}

		return out, nil
	}

	lastRow := cfg.OutHeight - n
	lastCol := cfg.OutWidth - n
	for i := 0; i < cfg.OutHeight; i++ {
		ii, di := i, 0
		if i > lastRow {
			ii, di = lastRow, i-lastRow
		}
		for j := 0; j < cfg.OutWidth; j++ {
			jj, dj := j, 0
			if j > lastCol {
				jj, dj = lastCol, j-lastCol
			}
			id, err := ids.At(ii, jj)
			if err != nil {
				return nil, fmt.Errorf("overlapping.Render: %w", err)
			}
			sym := patterns[id].MustAt(di, dj)
			if err := out.Set(i, j, sym); err != nil {
				return nil, fmt.Errorf("overlapping.Render: %w", err)
			}
		}
	}

	return out, nil
}
