package wave

import (
	"fmt"
	"math"

	"github.com/kelindar/bitmap"
)

// New allocates an HxW Wave where every cell allows every one of
// len(weights) patterns, and initializes the entropy memo from weights.
// weights must be non-empty and strictly positive: a zero weight would
// put ln(0) into the memo, so front-ends must filter disallowed patterns
// out before construction.
// Complexity: O(height*width*patterns) time and memory.
func New(height, width int, weights []float64) (*Wave, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("wave.New(%d,%d): %w", height, width, ErrInvalidDimensions)
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("wave.New: %w", ErrEmptyWeights)
	}
	wLogW := make([]float64, len(weights))
	var initSum, initPLogP float64
	for p, wt := range weights {
		if wt <= 0 {
			return nil, fmt.Errorf("wave.New: pattern %d has weight %v: %w", p, wt, ErrNonPositiveWeight)
		}
		wLogW[p] = wt * math.Log(wt)
		initSum += wt
		initPLogP += wLogW[p]
	}

	w := &Wave{
		height:  height,
		width:   width,
		weights: append([]float64(nil), weights...),
		wLogW:   wLogW,
		cells:   make([]cell, height*width),
	}
	for i := range w.cells {
		w.initCell(&w.cells[i], initSum, initPLogP)
	}

	return w, nil
}

// initCell sets c to the "every pattern allowed" state.
// Complexity: O(patterns) (the bitmap fill).
func (w *Wave) initCell(c *cell, sum, plogpSum float64) {
	c.allowed = bitmap.Bitmap{}
	c.allowed.Grow(uint32(len(w.weights)))
	for p := range w.weights {
		c.allowed.Set(uint32(p))
	}
	c.sum = sum
	c.plogpSum = plogpSum
	c.nPatterns = len(w.weights)
}

// Height, Width, NumPatterns return the wave's shape. Complexity: O(1).
func (w *Wave) Height() int      { return w.height }
func (w *Wave) Width() int       { return w.width }
func (w *Wave) NumPatterns() int { return len(w.weights) }

// Weights returns the read-only pattern weight vector shared by all cells.
// Callers must not mutate the returned slice.
func (w *Wave) Weights() []float64 { return w.weights }

// cellIndex computes the flat cell offset for (y, x), bounds-checked.
func (w *Wave) cellIndex(y, x int) (int, error) {
	if y < 0 || y >= w.height || x < 0 || x >= w.width {
		return 0, fmt.Errorf("wave: cell(%d,%d) out of [0,%d)x[0,%d): %w",
			y, x, w.height, w.width, ErrIndexOutOfBounds)
	}

	return y*w.width + x, nil
}

// Get reports whether pattern p is currently allowed at (y, x).
// Complexity: O(1).
func (w *Wave) Get(y, x, p int) (bool, error) {
	idx, err := w.cellIndex(y, x)
	if err != nil {
		return false, err
	}

	return w.cells[idx].allowed.Contains(uint32(p)), nil
}

// NumAllowed returns |allow-set| at (y, x). Complexity: O(1).
func (w *Wave) NumAllowed(y, x int) (int, error) {
	idx, err := w.cellIndex(y, x)
	if err != nil {
		return 0, err
	}

	return w.cells[idx].nPatterns, nil
}

// Ban removes pattern p from the allow-set at (y, x). It is idempotent: if
// p is already banned, Ban is a no-op and returns banned=false. Returns
// banned=true when this call actually flipped the bit, which is the
// Propagator's trigger to enqueue (y,x,p) for downstream propagation.
// Complexity: O(1).
func (w *Wave) Ban(y, x, p int) (banned bool, err error) {
	idx, err := w.cellIndex(y, x)
	if err != nil {
		return false, err
	}
	c := &w.cells[idx]
	if !c.allowed.Contains(uint32(p)) {
		return false, nil // idempotent: already banned
	}
	c.allowed.Remove(uint32(p))
	c.nPatterns--
	c.sum -= w.weights[p]
	c.plogpSum -= w.wLogW[p]

	return true, nil
}

// Entropy returns ln(sum) - plogpSum/sum for the allow-set at (y, x). It is
// only defined for cells with >=2 allowed patterns; callers (MinEntropyCell)
// must not call it otherwise.
// Complexity: O(1).
func (w *Wave) Entropy(y, x int) (float64, error) {
	idx, err := w.cellIndex(y, x)
	if err != nil {
		return 0, err
	}
	c := &w.cells[idx]
	if c.nPatterns < 2 {
		return 0, fmt.Errorf("wave.Entropy(%d,%d): %w", y, x, ErrEntropyUndefined)
	}

	return math.Log(c.sum) - c.plogpSum/c.sum, nil
}

// MinEntropyCell scans the wave for the cell with strictly minimum entropy
// among cells with >=2 allowed patterns. One random 32-bit integer is drawn
// per such candidate cell, and ties are broken by keeping the smallest draw,
// which makes the choice uniform over the tied set without materializing
// it.
//
// Returns Contradiction if any cell has 0 allowed patterns (checked first,
// so a contradiction is reported even if it coexists with undecided
// cells), Finished if every cell has <=1, or Selected(y,x) otherwise.
// Complexity: O(height*width).
func (w *Wave) MinEntropyCell(rng Rand) Observation {
	bestEntropy := math.Inf(1)
	var bestDraw uint32
	bestY, bestX := -1, -1
	anyUndecided := false

	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			c := &w.cells[y*w.width+x]
			if c.nPatterns == 0 {
				return Observation{Status: Contradiction, Y: y, X: x}
			}
			if c.nPatterns < 2 {
				continue
			}
			anyUndecided = true
			e := math.Log(c.sum) - c.plogpSum/c.sum
			draw := rng.Uint32()
			if bestY < 0 || e < bestEntropy || (e == bestEntropy && draw < bestDraw) {
				bestEntropy, bestY, bestX, bestDraw = e, y, x, draw
			}
		}
	}

	if !anyUndecided {
		return Observation{Status: Finished}
	}

	return Observation{Status: Selected, Y: bestY, X: bestX}
}

// Reset restores every cell to allowing every pattern and reinitializes
// the entropy memo; initCell gives each cell a freshly grown bitmap.
// Complexity: O(height*width*patterns).
func (w *Wave) Reset() {
	var initSum, initPLogP float64
	for p, wt := range w.weights {
		initSum += wt
		initPLogP += w.wLogW[p]
	}
	for i := range w.cells {
		w.cells[i].allowed.Clear()
		w.initCell(&w.cells[i], initSum, initPLogP)
	}
}
