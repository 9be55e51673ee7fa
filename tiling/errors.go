// SPDX-License-Identifier: MIT
package tiling

import "errors"

// ErrNonSquareTileContent indicates a tile's content grid is not square;
// the tiling model requires square content so rotation is well-defined
// (the original source's `tile.rs` dimension check).
var ErrNonSquareTileContent = errors.New("tiling: tile content must be square")

// ErrEmptyTiles indicates Build was called with zero tiles.
var ErrEmptyTiles = errors.New("tiling: tile set must be non-empty")

// ErrUnknownSymmetryClass indicates a Tile declares a SymmetryClass value
// outside {X, I, Backslash, T, L, P}.
var ErrUnknownSymmetryClass = errors.New("tiling: unknown symmetry class")

// ErrTileIndexOutOfRange indicates a NeighborEntry references a tile index
// outside the configured tile set.
var ErrTileIndexOutOfRange = errors.New("tiling: neighbor entry references an out-of-range tile index")

// ErrOrientationOutOfRange indicates a NeighborEntry references an
// orientation outside a tile's declared symmetry class orientation count.
var ErrOrientationOutOfRange = errors.New("tiling: neighbor entry references an out-of-range orientation")

// ErrInvalidDimensions indicates a non-positive output height or width.
var ErrInvalidDimensions = errors.New("tiling: dimensions must be > 0")
