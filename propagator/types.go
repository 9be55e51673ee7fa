// Package propagator implements the WFC arc-consistency engine: it owns a
// Wave and a dense per-(cell,pattern,direction) support-counter grid, and
// enforces compatibility via a queue-driven decrement algorithm instead of
// the textbook recursive ban, keeping propagation depth bounded on large
// grids regardless of how far a ban cascades.
//
// The propagation queue is a plain slice used as a LIFO stack, the same
// choice a graph BFS traversal frontier makes (a slice, not
// container/list or a channel) — FIFO vs LIFO does not affect correctness
// here since the compatibility fixpoint is unique.
package propagator

import (
	"github.com/procedural-go/wfc/direction"
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/wave"
)

// CompatTable holds, for every pattern p and direction d, the sorted list
// of patterns q compatible in direction d of p. It is built once by a
// front-end and is read-only for the lifetime of a solve; it may be
// shared across concurrently running solvers.
type CompatTable struct {
	numPatterns int
	lists       [][4][]int
}

// NewCompatTable allocates an empty table for numPatterns patterns; every
// compat[p][d] starts as an empty list until Set is called.
func NewCompatTable(numPatterns int) *CompatTable {
	return &CompatTable{
		numPatterns: numPatterns,
		lists:       make([][4][]int, numPatterns),
	}
}

// NumPatterns returns the number of patterns the table was built for.
func (c *CompatTable) NumPatterns() int { return c.numPatterns }

// Set assigns the (sorted) compatible-pattern list for (p, d). Front-ends
// are responsible for sorting qs and for establishing the symmetry
// invariant (q in compat[p][d] iff p in compat[q][opposite(d)]) before
// handing the table to a Propagator; see overlapping and tiling, which
// construct it by different means but both guarantee the invariant.
func (c *CompatTable) Set(p int, d direction.Direction, qs []int) {
	c.lists[p][d.Index()] = qs
}

// Get returns compat[p][d].
func (c *CompatTable) Get(p int, d direction.Direction) []int {
	return c.lists[p][d.Index()]
}

// CheckSymmetry verifies the compatibility-symmetry invariant the
// propagator's counter trick depends on:
// q in compat[p][d] iff p in compat[q][opposite(d)]. Intended for tests
// and for front-ends to self-check a freshly built table; not called on
// the hot path.
// Complexity: O(patterns^2 * 4) worst case.
func (c *CompatTable) CheckSymmetry() bool {
	for p := 0; p < c.numPatterns; p++ {
		for _, d := range direction.Directions() {
			for _, q := range c.Get(p, d) {
				if !contains(c.Get(q, d.Opposite()), p) {
					return false
				}
			}
		}
	}

	return true
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

// Propagator owns a Wave and the support-counter grid, and is the unit
// through which the Solver observes arc-consistency.
type Propagator struct {
	wave     *wave.Wave
	counters *grid2d.Grid3D
	compat   *CompatTable
	toric    bool
	queue    []queueItem
}

type queueItem struct {
	y, x, p int
}
