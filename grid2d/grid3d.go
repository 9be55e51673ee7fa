package grid2d

import "fmt"

// Grid3D is a dense H x W x P x 4 container of int32 counters, used by the
// propagator to store supports[y][x][p][d]. Storage is one contiguous flat
// slice indexed by ((y*width+x)*patterns+p)*4+d, matching the reference
// implementation's flat Vec3D backing rather than nested slices, for cache
// locality on the hottest loop in the engine (every ban decrements up to
// 4*patterns counters).
//
// Grid3D is not safe for concurrent mutation.
type Grid3D struct {
	height, width, patterns int
	data                    []int32 // flat backing, length == height*width*patterns*4
}

// dirsPerCell is the fixed direction-set size (direction.Directions()).
const dirsPerCell = 4

// NewGrid3D allocates a height x width x patterns x 4 counter grid,
// zero-initialized.
// Complexity: O(height*width*patterns) time and memory.
func NewGrid3D(height, width, patterns int) (*Grid3D, error) {
	if height <= 0 || width <= 0 || patterns <= 0 {
		return nil, fmt.Errorf("grid2d.NewGrid3D(%d,%d,%d): %w", height, width, patterns, ErrInvalidDimensions)
	}

	return &Grid3D{
		height:   height,
		width:    width,
		patterns: patterns,
		data:     make([]int32, height*width*patterns*dirsPerCell),
	}, nil
}

// Height, Width, Patterns return the grid's shape. Complexity: O(1).
func (g *Grid3D) Height() int   { return g.height }
func (g *Grid3D) Width() int    { return g.width }
func (g *Grid3D) Patterns() int { return g.patterns }

// offset computes the flat index for (y, x, p, d). Unchecked: callers in
// this module always iterate within bounds; the propagator never accepts
// externally supplied (y,x,p,d) tuples without first validating them
// against the wave's shape.
// Complexity: O(1).
func (g *Grid3D) offset(y, x, p, d int) int {
	return ((y*g.width+x)*g.patterns+p)*dirsPerCell + d
}

// Get returns supports[y][x][p][d]. Complexity: O(1).
func (g *Grid3D) Get(y, x, p, d int) int32 {
	return g.data[g.offset(y, x, p, d)]
}

// Set assigns supports[y][x][p][d] = v. Complexity: O(1).
func (g *Grid3D) Set(y, x, p, d int, v int32) {
	g.data[g.offset(y, x, p, d)] = v
}

// Decrement subtracts 1 from supports[y][x][p][d] and returns the new
// value. Complexity: O(1).
func (g *Grid3D) Decrement(y, x, p, d int) int32 {
	idx := g.offset(y, x, p, d)
	g.data[idx]--

	return g.data[idx]
}

// ZeroAllDirections sets supports[y][x][p][*] to 0 for all four
// directions: once a pattern p is banned at (y,x), its four counters are
// forced to 0 and are never inspected again.
// Complexity: O(1).
func (g *Grid3D) ZeroAllDirections(y, x, p int) {
	base := g.offset(y, x, p, 0)
	g.data[base] = 0
	g.data[base+1] = 0
	g.data[base+2] = 0
	g.data[base+3] = 0
}

// Reset zeroes the entire grid in place, avoiding a fresh allocation on
// Propagator.Reset: the H*W*P*4 counters are the dominant memory term, so
// re-allocating them on every restart would defeat the point of an
// in-place reset.
// Complexity: O(height*width*patterns).
func (g *Grid3D) Reset() {
	for i := range g.data {
		g.data[i] = 0
	}
}
