// SPDX-License-Identifier: MIT
package overlapping

import "errors"

// ErrEmptyInput indicates the input grid has zero area.
var ErrEmptyInput = errors.New("overlapping: input must be non-empty")

// ErrInvalidSymmetry indicates Config.Symmetry is not one of {1, 2, 4, 8}.
var ErrInvalidSymmetry = errors.New("overlapping: symmetry must be one of {1,2,4,8}")

// ErrPatternTooLarge indicates the pattern size exceeds the input or the
// requested output dimensions: it must be <= min(outHeight, outWidth).
var ErrPatternTooLarge = errors.New("overlapping: pattern_size exceeds input or output dimensions")

// ErrInvalidDimensions indicates a non-positive pattern size or output shape.
var ErrInvalidDimensions = errors.New("overlapping: dimensions must be > 0")

// ErrNoPatterns indicates pattern extraction produced an empty pattern set,
// which can only happen from a malformed (zero-area) input.
var ErrNoPatterns = errors.New("overlapping: extraction produced no patterns")

// ErrNoGroundPattern indicates the sampled bottom-middle ground window did
// not match any extracted pattern, which would indicate an extraction/
// ground-sampling mismatch rather than a normal outcome.
var ErrNoGroundPattern = errors.New("overlapping: ground window matches no extracted pattern")
