// Package tiling implements the tiling-model front-end: it expands each
// declared tile into its distinct oriented variants per its
// symmetry class, lifts a neighbor list into a per-direction compatibility
// table via an action-map composition, and renders a solved grid of
// oriented tile ids back into a symbol grid.
package tiling

import (
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
)

// Symbol is the constraint on a tile's content cell type.
type Symbol interface {
	comparable
}

// SymmetryClass fixes how many distinct rotations/reflections of a tile
// are considered distinct.
type SymmetryClass int

const (
	SymmetryX SymmetryClass = iota
	SymmetryI
	SymmetryBackslash
	SymmetryT
	SymmetryL
	SymmetryP
)

// String names a symmetry class for error messages and test output.
func (sc SymmetryClass) String() string {
	switch sc {
	case SymmetryX:
		return "X"
	case SymmetryI:
		return "I"
	case SymmetryBackslash:
		return "\\"
	case SymmetryT:
		return "T"
	case SymmetryL:
		return "L"
	case SymmetryP:
		return "P"
	default:
		return "invalid"
	}
}

// OrientationCount returns the number of distinct oriented variants a
// symmetry class has: X=1, I=\=2, T=L=4, P=8.
func (sc SymmetryClass) OrientationCount() int {
	switch sc {
	case SymmetryX:
		return 1
	case SymmetryI, SymmetryBackslash:
		return 2
	case SymmetryT, SymmetryL:
		return 4
	case SymmetryP:
		return 8
	default:
		return 0
	}
}

// Tile is one problem tile: its base (orientation 0) content, its
// symmetry class, and its weight (split evenly over its orientations at
// expansion time).
type Tile[S Symbol] struct {
	Content  *grid2d.Grid2D[S]
	Symmetry SymmetryClass
	Weight   float64
}

// NeighborEntry asserts that tile B at orientation OrientB is immediately
// to the right of tile A at orientation OrientA.
type NeighborEntry struct {
	TileA, OrientA int
	TileB, OrientB int
}

// Config holds the tiling front-end's recognized options.
type Config struct {
	Periodic  bool
	Neighbors []NeighborEntry
	OutHeight int
	OutWidth  int
}

// Model is a built tiling problem: the oriented tile expansion and its
// lifted compatibility table, ready to be solved any number of times.
type Model[S Symbol] struct {
	ot     *orientedTiles[S]
	compat *propagator.CompatTable
	config Config
}

// Weights returns the per-oriented-tile weight used for weighted
// observation, indexed by oriented id.
func (m *Model[S]) Weights() []float64 { return m.ot.weights }

// Compat returns the lifted per-direction compatibility table.
func (m *Model[S]) Compat() *propagator.CompatTable { return m.compat }

// OrientedTileCount returns the total number of oriented tile variants
// across every declared tile.
func (m *Model[S]) OrientedTileCount() int { return len(m.ot.patterns) }
