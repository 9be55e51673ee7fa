// Package grid2d provides dense, row-major 2D/3D containers with the pure
// transforms (reflect/rotate/toric-subwindow) the overlapping and tiling
// front-ends need to build patterns, and the flat counter storage the
// propagator needs for its support-counter grid.
//
// Storage is one flat backing slice addressed by a bounds-checked
// indexOf, rather than a slice-of-slices, for cache locality and a
// single allocation per grid.
package grid2d

import "fmt"

// Grid2D is a dense, row-major, fixed-shape grid of T.
//
// Grid2D is not safe for concurrent mutation; callers needing concurrent
// access must synchronize externally. A single solve never shares a
// Grid2D across goroutines; it runs single-threaded end to end.
type Grid2D[T any] struct {
	height, width int
	data          []T // flat backing storage, length == height*width
}

// New allocates a height x width Grid2D with every cell set to the zero
// value of T.
// Complexity: O(height*width) time and memory.
func New[T any](height, width int) (*Grid2D[T], error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("grid2d.New(%d,%d): %w", height, width, ErrInvalidDimensions)
	}

	return &Grid2D[T]{
		height: height,
		width:  width,
		data:   make([]T, height*width),
	}, nil
}

// NewFilled allocates a height x width Grid2D with every cell initialized
// to fill.
// Complexity: O(height*width).
func NewFilled[T any](height, width int, fill T) (*Grid2D[T], error) {
	g, err := New[T](height, width)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = fill
	}

	return g, nil
}

// FromRows builds a Grid2D from a rectangular slice of rows. All rows must
// have equal length; rows must be non-empty.
// Complexity: O(height*width).
func FromRows[T any](rows [][]T) (*Grid2D[T], error) {
	height := len(rows)
	if height == 0 {
		return nil, fmt.Errorf("grid2d.FromRows: %w", ErrInvalidDimensions)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("grid2d.FromRows: %w", ErrInvalidDimensions)
	}
	g, err := New[T](height, width)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid2d.FromRows: row %d has length %d, want %d: %w",
				y, len(row), width, ErrInvalidDimensions)
		}
		copy(g.data[y*width:(y+1)*width], row)
	}

	return g, nil
}

// Height returns the number of rows. Complexity: O(1).
func (g *Grid2D[T]) Height() int { return g.height }

// Width returns the number of columns. Complexity: O(1).
func (g *Grid2D[T]) Width() int { return g.width }

// indexOf computes the flat offset for (y, x), bounds-checked.
// Complexity: O(1).
func (g *Grid2D[T]) indexOf(y, x int) (int, error) {
	if y < 0 || y >= g.height || x < 0 || x >= g.width {
		return 0, fmt.Errorf("grid2d: At(%d,%d) out of [0,%d)x[0,%d): %w",
			y, x, g.height, g.width, ErrIndexOutOfBounds)
	}

	return y*g.width + x, nil
}

// At returns the value at (y, x).
// Complexity: O(1).
func (g *Grid2D[T]) At(y, x int) (T, error) {
	idx, err := g.indexOf(y, x)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// MustAt is At without the error return, for call sites that have already
// validated (y, x) are in range (e.g. a loop bounded by Height()/Width()).
// Complexity: O(1).
func (g *Grid2D[T]) MustAt(y, x int) T {
	return g.data[y*g.width+x]
}

// Set assigns v to (y, x).
// Complexity: O(1).
func (g *Grid2D[T]) Set(y, x int, v T) error {
	idx, err := g.indexOf(y, x)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a copy of row y as a fresh slice.
// Complexity: O(width).
func (g *Grid2D[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= g.height {
		return nil, fmt.Errorf("grid2d: Row(%d): %w", y, ErrIndexOutOfBounds)
	}
	row := make([]T, g.width)
	copy(row, g.data[y*g.width:(y+1)*g.width])

	return row, nil
}

// Reflected returns a new Grid2D mirrored along the vertical axis: each row
// is reversed left-to-right.
// Complexity: O(height*width).
func (g *Grid2D[T]) Reflected() *Grid2D[T] {
	out := &Grid2D[T]{height: g.height, width: g.width, data: make([]T, len(g.data))}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out.data[y*g.width+(g.width-1-x)] = g.data[y*g.width+x]
		}
	}

	return out
}

// Rotated returns a new Grid2D rotated 90 degrees counter-clockwise. The
// returned grid has shape (width, height): out[y][x] = in[x][width-1-y].
// Complexity: O(height*width).
func (g *Grid2D[T]) Rotated() *Grid2D[T] {
	out := &Grid2D[T]{height: g.width, width: g.height, data: make([]T, len(g.data))}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			// out[y][x] = in[x][width-1-y]
			out.data[y*out.width+x] = g.data[x*g.width+(g.width-1-y)]
		}
	}

	return out
}

// GetSubVec extracts a toric h x w subwindow with top-left corner (y, x).
// Element (dy, dx) of the result equals self[(y+dy) mod Height][(x+dx) mod
// Width]. Precondition: h <= Height() and w <= Width(); callers wanting
// non-toric behavior must pre-restrict (y, x) so the window never needs to
// wrap (e.g. by bounding the origin range as the overlapping front-end does
// for non-periodic input).
// Complexity: O(h*w).
func (g *Grid2D[T]) GetSubVec(y, x, h, w int) (*Grid2D[T], error) {
	if h > g.height || w > g.width {
		return nil, fmt.Errorf("grid2d.GetSubVec(%d,%d,%d,%d): %w", y, x, h, w, ErrSubWindowTooLarge)
	}
	out := &Grid2D[T]{height: h, width: w, data: make([]T, h*w)}
	for dy := 0; dy < h; dy++ {
		sy := mod(y+dy, g.height)
		for dx := 0; dx < w; dx++ {
			sx := mod(x+dx, g.width)
			out.data[dy*w+dx] = g.data[sy*g.width+sx]
		}
	}

	return out, nil
}

// mod returns the non-negative remainder of a/n, unlike Go's % which can be
// negative for negative a.
// Complexity: O(1).
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}

// Equal reports whether a and b have identical shape and contents,
// using == for comparison; T must be comparable at the call site (the
// overlapping front-end instantiates this over its Symbol constraint, which
// embeds comparable).
// Complexity: O(height*width).
func Equal[T comparable](a, b *Grid2D[T]) bool {
	if a.height != b.height || a.width != b.width {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Data returns the flat row-major backing slice. Callers must not retain a
// mutable reference beyond read-only inspection (e.g. hashing pattern
// content); returned for zero-copy access by overlapping.hashPattern.
// Complexity: O(1).
func (g *Grid2D[T]) Data() []T {
	return g.data
}
