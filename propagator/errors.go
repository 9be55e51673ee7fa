// SPDX-License-Identifier: MIT
package propagator

import "errors"

// ErrInvalidDimensions indicates height or width is non-positive.
var ErrInvalidDimensions = errors.New("propagator: dimensions must be > 0")

// ErrCompatSizeMismatch indicates the compatibility table's pattern count
// does not match the weight vector's length.
var ErrCompatSizeMismatch = errors.New("propagator: compat table size does not match weights")

// ErrIndexOutOfBounds indicates a (y, x) or pattern index is out of range.
var ErrIndexOutOfBounds = errors.New("propagator: index out of bounds")
