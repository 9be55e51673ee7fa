package tiling

import (
	"fmt"

	"github.com/procedural-go/wfc/grid2d"
)

// Render expands a solved grid of oriented tile ids into the full
// symbol grid: cell (i, j) of ids becomes the side x side content block
// of its oriented tile, placed at rows [i*side, i*side+side) and columns
// [j*side, j*side+side) of the output, matching tiling_wfc.rs's
// id_to_tiling.
// Complexity: O(H * W * side^2).
func Render[S Symbol](ids *grid2d.Grid2D[int], ot *orientedTiles[S]) (*grid2d.Grid2D[S], error) {
	h, w := ids.Height(), ids.Width()
	side := ot.side

	out, err := grid2d.New[S](h*side, w*side)
	if err != nil {
		return nil, fmt.Errorf("tiling.Render: %w", err)
	}

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			id, err := ids.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("tiling.Render: %w", err)
			}
			if id < 0 || id >= len(ot.patterns) {
				return nil, fmt.Errorf("tiling.Render: %w", ErrTileIndexOutOfRange)
			}
			content := ot.patterns[id]
			for dy := 0; dy < side; dy++ {
				for dx := 0; dx < side; dx++ {
					v := content.MustAt(dy, dx)
					if err := out.Set(i*side+dy, j*side+dx, v); err != nil {
						return nil, fmt.Errorf("tiling.Render: %w", err)
					}
				}
			}
		}
	}

	return out, nil
}
