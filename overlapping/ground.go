package overlapping

import (
	"fmt"

	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
)

// Row/direction convention: Direction.Down has unit vector (-1, 0), so
// moving Down monotonically decreases y and bottoms out at y=0. Row 0 is
// therefore "the bottom row" in both the output wave and the sample
// input, and ground pinning must use row 0 consistently with
// propagator.neighbor's Down/Up arithmetic or the horizon ends up pinned
// to the wrong edge.
const groundRow = 0

// findGroundOrigin locates the bottom-middle NxN origin in input: the
// ground pattern is the NxN subwindow at the input's bottom-middle,
// toric if periodicInput, non-toric otherwise.
func findGroundOrigin(width, n int, periodicInput bool) (y, x int) {
	if periodicInput {
		return groundRow, width / 2
	}

	maxX := width - n
	return groundRow, maxX / 2
}

// FindGroundPattern returns the pattern id matching the input's
// bottom-middle NxN window, for use as the ground pattern id.
// Complexity: O(patterns * N^2) worst case (linear scan with value-equality
// fallback, same as extraction's dedup check).
func FindGroundPattern[S Symbol](input *grid2d.Grid2D[S], patterns []*grid2d.Grid2D[S], n int, periodicInput bool) (int, error) {
	y, x := findGroundOrigin(input.Width(), n, periodicInput)
	window, err := input.GetSubVec(y, x, n, n)
	if err != nil {
		return 0, fmt.Errorf("overlapping.FindGroundPattern: %w", err)
	}
	for id, p := range patterns {
		if grid2d.Equal(p, window) {
			return id, nil
		}
	}

	return 0, fmt.Errorf("overlapping.FindGroundPattern: %w", ErrNoGroundPattern)
}

// ApplyGroundPins bans every pattern except groundID in the bottom row,
// and bans groundID everywhere else, then lets each Ban's propagation
// run. Must be called before the first observe step.
// Complexity: O(height*width*patterns) worst case, dominated by
// propagation triggered by the bans.
func ApplyGroundPins(prop *propagator.Propagator, groundID, height, width, numPatterns int) error {
	for x := 0; x < width; x++ {
		for pat := 0; pat < numPatterns; pat++ {
			if pat == groundID {
				continue
			}
			if err := prop.Ban(groundRow, x, pat); err != nil {
				return fmt.Errorf("overlapping.ApplyGroundPins: %w", err)
			}
		}
	}
	for y := 0; y < height; y++ {
		if y == groundRow {
			continue
		}
		for x := 0; x < width; x++ {
			if err := prop.Ban(y, x, groundID); err != nil {
				return fmt.Errorf("overlapping.ApplyGroundPins: %w", err)
			}
		}
	}

	return nil
}
