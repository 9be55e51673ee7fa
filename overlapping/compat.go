package overlapping

import (
	"github.com/procedural-go/wfc/direction"
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
)

// overlapCompatible reports whether a is compatible in direction (dy, dx)
// of b: for every (y, x) such that both (y, x) and (y-dy, x-dx) fall
// inside the NxN window, a[y][x] must equal b[y-dy][x-dx].
// Complexity: O(N^2).
func overlapCompatible[S Symbol](a, b *grid2d.Grid2D[S], dy, dx int) bool {
	n := a.Height() // patterns are always square, a.Height() == a.Width()
	for y := 0; y < n; y++ {
		yy := y - dy
		if yy < 0 || yy >= n {
			continue
		}
		for x := 0; x < n; x++ {
			xx := x - dx
			if xx < 0 || xx >= n {
				continue
			}
			if a.MustAt(y, x) != b.MustAt(yy, xx) {
				return false
			}
		}
	}

	return true
}

// BuildCompatTable computes compat[a][d] for every ordered pattern pair
// and direction by pointwise overlap agreement. The compat[p][d] vs
// compat[q][opposite(d)] symmetry invariant holds by construction:
// overlapCompatible is symmetric under swapping (a, b) and negating
// (dy, dx), which is exactly (b, a, opposite(d)).
// Complexity: O(patterns^2 * 4 * N^2).
func BuildCompatTable[S Symbol](patterns []*grid2d.Grid2D[S]) *propagator.CompatTable {
	ct := propagator.NewCompatTable(len(patterns))
	for a := range patterns {
		for _, d := range direction.Directions() {
			dy, dx := d.Unit()
			var qs []int
			for b := range patterns {
				if overlapCompatible(patterns[a], patterns[b], dy, dx) {
					qs = append(qs, b)
				}
			}
			ct.Set(a, d, qs)
		}
	}

	return ct
}
