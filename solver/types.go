// Package solver implements the WFC observe-propagate loop: it owns a
// Propagator and an XorShift128 PRNG, repeatedly selects the
// minimum-entropy cell, samples one pattern for it by weight, and bans
// every other pattern there, until the wave is fully decided or
// contradicts.
package solver

import (
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
)

// Output is the HxW grid of decided pattern indices a successful Run
// produces; the solver emits indices, front-ends map them back to
// symbols/tiles.
type Output = grid2d.Grid2D[int]

// Solver drives one observe-propagate loop over a Propagator. A Solver
// exclusively owns its Propagator; weights and the compat table the
// Propagator was built from are read-only and may be shared with other
// concurrently running solvers, but a Solver/Propagator/Wave triple
// itself must not be shared across goroutines.
type Solver struct {
	rng     *XorShift128
	weights []float64
	prop    *propagator.Propagator
	dist    []float64 // scratch weighted-distribution buffer, reused across Step calls
}
