// Package overlapping implements the overlapping-model front-end: it
// extracts NxN patterns (with symmetries) from a sample image,
// precomputes their adjacency compatibility by pointwise overlap
// agreement, optionally pins a ground pattern to the output's bottom row,
// and renders a solved wave back into a symbol grid.
package overlapping

import (
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
)

// Symbol is the constraint on the image's cell type: value equality is
// all pattern extraction needs.
type Symbol interface {
	comparable
}

// Config holds the overlapping front-end's recognized options.
type Config struct {
	PeriodicInput  bool
	PeriodicOutput bool
	OutHeight      int
	OutWidth       int
	Symmetry       int // one of {1, 2, 4, 8}
	PatternSize    int // N of the NxN window
	Ground         bool
}

// Model is a fully preprocessed overlapping problem: the extracted pattern
// set, their weights, and the ground pattern id if Config.Ground was set.
// Model is read-only after Build and may be reused across solver attempts.
type Model[S Symbol] struct {
	patterns    []*grid2d.Grid2D[S]
	weights     []float64
	compat      *propagator.CompatTable
	patternSize int
	config      Config
	groundID    int // -1 if Config.Ground is false
}

// Patterns returns the extracted, deduplicated pattern set in the order
// their pattern ids were assigned.
func (m *Model[S]) Patterns() []*grid2d.Grid2D[S] { return m.patterns }

// Weights returns the occurrence-count weight of each pattern, indexed by
// pattern id, matching Patterns().
func (m *Model[S]) Weights() []float64 { return m.weights }

// GroundID returns the ground pattern's id, or -1 if Config.Ground is false.
func (m *Model[S]) GroundID() int { return m.groundID }
