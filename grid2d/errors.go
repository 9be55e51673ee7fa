// SPDX-License-Identifier: MIT
package grid2d

import "errors"

// ErrInvalidDimensions indicates that requested grid dimensions are
// non-positive.
var ErrInvalidDimensions = errors.New("grid2d: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside the
// valid range for a non-toric access.
var ErrIndexOutOfBounds = errors.New("grid2d: index out of bounds")

// ErrSubWindowTooLarge indicates GetSubVec was asked for a window taller or
// wider than the source grid; a toric wrap can never satisfy that request
// without repeating rows/columns the caller did not ask for.
var ErrSubWindowTooLarge = errors.New("grid2d: sub-window larger than source grid")
