// SPDX-License-Identifier: MIT
package wave

import "errors"

// ErrInvalidDimensions indicates height, width, or the pattern count is
// non-positive.
var ErrInvalidDimensions = errors.New("wave: dimensions must be > 0")

// ErrEmptyWeights indicates New was called with zero patterns.
var ErrEmptyWeights = errors.New("wave: weights must be non-empty")

// ErrNonPositiveWeight indicates a weight was <= 0; weights must stay
// strictly positive so ln(w) stays finite in the entropy memo. Callers
// that want to disallow a pattern must filter it out before construction
// rather than passing a zero weight.
var ErrNonPositiveWeight = errors.New("wave: pattern weight must be > 0")

// ErrIndexOutOfBounds indicates a (y, x) or pattern index is out of range.
var ErrIndexOutOfBounds = errors.New("wave: index out of bounds")

// ErrEntropyUndefined indicates Entropy was asked for a cell with fewer
// than 2 allowed patterns; the caller (MinEntropyCell) is expected to skip
// such cells rather than call Entropy on them.
var ErrEntropyUndefined = errors.New("wave: entropy undefined for cell with <2 allowed patterns")
