// SPDX-License-Identifier: MIT
package solver

import "errors"

// ErrContradiction is returned by Run when the wave reached a cell
// with zero allowed patterns. It is recoverable: the caller may call
// Restart with a new seed and try again. The Solver itself never
// retries; RunWithRetries is an opt-in convenience that does.
var ErrContradiction = errors.New("solver: contradiction")

// ErrUndecidedCell indicates ToOutput was asked to read back a wave that
// is not actually fully decided. Run only calls ToOutput after observing
// Finished, so this indicates a propagator bug rather than a normal
// solve outcome — callers should treat it as a programmer error.
var ErrUndecidedCell = errors.New("solver: cell has != 1 allowed patterns")

// ErrInvalidDimensions indicates height or width is non-positive.
var ErrInvalidDimensions = errors.New("solver: dimensions must be > 0")

// ErrNoAttempts indicates RunWithRetries was called with an empty seed list.
var ErrNoAttempts = errors.New("solver: maxAttempts must be > 0")
