// Package wave implements the WFC wave: an HxW grid of per-cell pattern
// allow-sets plus an incrementally maintained Shannon-entropy memo, and the
// minimum-entropy cell selector the observe loop drives.
//
// The allow-set is backed by github.com/kelindar/bitmap (one Bitmap per
// cell), the same "bit per index, Set/Contains/Remove" shape
// kelindar/noise uses for its spatial-occupancy grid — a pattern allow-set
// is exactly a sparse boolean set over a dense integer range.
package wave

import (
	"github.com/kelindar/bitmap"
)

// Rand is the minimal randomness source MinEntropyCell needs: one 32-bit
// draw per candidate cell. solver.XorShift128 satisfies this interface; it
// is declared locally (rather than imported from solver) to avoid a
// wave->solver dependency cycle, the same way a small local callback
// interface avoids importing a heavier sibling package just for its type.
type Rand interface {
	Uint32() uint32
}

// cell holds one grid cell's allow-set and its entropy memo. The memo
// fields are always kept consistent with allowed: adding weights[p] is
// never necessary (allow-sets only shrink during a solve), only Ban's
// subtraction and Reset's full reinitialization touch them.
type cell struct {
	allowed   bitmap.Bitmap
	sum       float64 // Σ w_p over allowed patterns
	plogpSum  float64 // Σ w_p*ln(w_p) over allowed patterns
	nPatterns int     // |allowed|
}

// Wave is the HxW grid of per-cell pattern allow-sets plus their entropy
// memo.
//
// Wave is not safe for concurrent mutation; the solver owns exactly one
// Wave (via its Propagator) for the lifetime of a solve.
type Wave struct {
	height, width int
	weights       []float64 // read-only pattern weights, shared across cells
	wLogW         []float64 // precomputed weights[p] * ln(weights[p])
	cells         []cell    // length height*width, row-major
}

// Status is the three-way result of MinEntropyCell.
type Status int

const (
	// Selected means (Y, X) is the minimum-entropy cell with >=2 allowed
	// patterns; the observe loop should collapse it next.
	Selected Status = iota
	// Finished means every cell has <=1 allowed pattern: the wave is
	// fully decided.
	Finished
	// Contradiction means some cell has 0 allowed patterns.
	Contradiction
)

// Observation is MinEntropyCell's result: a Status plus, only when Status
// is Selected, the chosen cell's coordinates.
type Observation struct {
	Status Status
	Y, X   int
}
