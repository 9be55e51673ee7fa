package overlapping

import (
	"fmt"

	"github.com/dgryski/go-farm"

	"github.com/procedural-go/wfc/grid2d"
)

// symmetryVariants returns the ordered list of symmetry variants of p0
// for the given multiplicity: 1 is identity only, 2 adds a reflection, 4
// adds a rotation and its reflection, 8 adds all four rotations and their
// reflections.
func symmetryVariants[S Symbol](p0 *grid2d.Grid2D[S], symmetry int) []*grid2d.Grid2D[S] {
	switch symmetry {
	case 1:
		return []*grid2d.Grid2D[S]{p0}
	case 2:
		return []*grid2d.Grid2D[S]{p0, p0.Reflected()}
	case 4:
		rot := p0.Rotated()
		return []*grid2d.Grid2D[S]{p0, p0.Reflected(), rot, rot.Reflected()}
	case 8:
		rot := p0.Rotated()
		rot2 := rot.Rotated()
		rot3 := rot2.Rotated()
		return []*grid2d.Grid2D[S]{
			p0, p0.Reflected(),
			rot, rot.Reflected(),
			rot2, rot2.Reflected(),
			rot3, rot3.Reflected(),
		}
	default:
		return nil
	}
}

// hashPattern computes a farm-hash accelerator key for a pattern's flat
// content, used only to shortlist dedup candidates; exact value equality
// is always re-checked on a hash hit (go-farm's hash is not a substitute
// for Symbol's own equality, only an index into the dedup map).
func hashPattern[S Symbol](g *grid2d.Grid2D[S]) uint64 {
	buf := make([]byte, 0, len(g.Data())*4)
	for _, v := range g.Data() {
		buf = fmt.Appendf(buf, "%v|", v)
	}

	return farm.Hash64(buf)
}

// ExtractPatterns builds the ordered (pattern, weight) list from input:
// every valid NxN origin (toric if PeriodicInput, otherwise restricted to
// never wrap), expanded to its symmetry variants, deduplicated by value
// equality with occurrence counts accumulating into weight. The index
// into the returned slice becomes the pattern id.
// Complexity: O(H*W*symmetry*N^2) for extraction plus hashing.
func ExtractPatterns[S Symbol](input *grid2d.Grid2D[S], cfg Config) ([]*grid2d.Grid2D[S], []float64, error) {
	if input.Height() <= 0 || input.Width() <= 0 {
		return nil, nil, fmt.Errorf("overlapping.ExtractPatterns: %w", ErrEmptyInput)
	}
	n := cfg.PatternSize
	if n <= 0 {
		return nil, nil, fmt.Errorf("overlapping.ExtractPatterns: %w", ErrInvalidDimensions)
	}
	switch cfg.Symmetry {
	case 1, 2, 4, 8:
	default:
		return nil, nil, fmt.Errorf("overlapping.ExtractPatterns: %w", ErrInvalidSymmetry)
	}

	originsH, originsW := input.Height(), input.Width()
	if !cfg.PeriodicInput {
		originsH = input.Height() - n + 1
		originsW = input.Width() - n + 1
		if originsH <= 0 || originsW <= 0 {
			return nil, nil, fmt.Errorf("overlapping.ExtractPatterns: %w", ErrPatternTooLarge)
		}
	}

	var patterns []*grid2d.Grid2D[S]
	var weights []float64
	index := make(map[uint64][]int) // hash -> candidate pattern ids

	for i := 0; i < originsH; i++ {
		for j := 0; j < originsW; j++ {
			p0, err := input.GetSubVec(i, j, n, n)
			if err != nil {
				return nil, nil, fmt.Errorf("overlapping.ExtractPatterns: %w", err)
			}
			for _, variant := range symmetryVariants(p0, cfg.Symmetry) {
				h := hashPattern(variant)
				found := -1
				for _, candidate := range index[h] {
					if grid2d.Equal(patterns[candidate], variant) {
						found = candidate
						break
					}
				}
				if found >= 0 {
					weights[found]++
					continue
				}
				id := len(patterns)
				patterns = append(patterns, variant)
				weights = append(weights, 1)
				index[h] = append(index[h], id)
			}
		}
	}

	if len(patterns) == 0 {
		return nil, nil, fmt.Errorf("overlapping.ExtractPatterns: %w", ErrNoPatterns)
	}

	return patterns, weights, nil
}
