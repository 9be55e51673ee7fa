// Package wfc (procedural-go/wfc) is your constraint-propagation engine
// for 2D procedural generation in Go.
//
// 🧩 What is wfc?
//
//	A deterministic, generic library that brings together:
//
//	  • A wave: one allow-set of candidate patterns per output cell,
//	    with incrementally maintained entropy, read in O(1) per cell
//	  • A propagator: queue-driven arc-consistency over a per-cell
//	    support-counter grid — no recursive ban, no stack growth
//	  • Two front-ends over the same core: overlapping (learn patterns
//	    and adjacency from a sample grid) and tiling (declare a tile
//	    set with symmetry classes and an explicit neighbor list)
//
// ✨ Why choose wfc?
//
//   - Deterministic  — (input, config, seed) always yields the same output
//   - Generic        — Grid2D[T] and both front-ends work over any
//     comparable symbol type, not one hardcoded palette
//   - Non-recursive  — propagation is a worklist, scales to large grids
//   - Toric-aware    — wrapping and non-wrapping grids share one core
//
// Under the hood, everything is organized under per-concern subpackages:
//
//	grid2d/      — generic 2D/3D grid storage, toric/non-toric indexing
//	direction/   — the fixed 4-direction cardinal set and its unit vectors
//	wave/        — the allow-set grid, entropy memo, minimum-entropy pick
//	propagator/  — the counter-based arc-consistency engine
//	solver/      — the observe/collapse loop, seeding, retries
//	overlapping/ — the sample-driven front-end: extraction, ground pinning
//	tiling/      — the declared-tile front-end: symmetry expansion, lifting
//
// Quick example, overlapping model:
//
//	input:  0 1 0        output (OutHeight=4, OutWidth=4):
//	        1 0 1           0 1 0 1
//	        0 1 0           1 0 1 0
//	                        0 1 0 1
//	                        1 0 1 0
//
// every 2x2 window of the output is one of the two checkerboard tiles
// seen in the input.
//
// See SPEC_FULL.md and DESIGN.md for the full specification and the
// grounding behind each package's design.
//
//	go get github.com/procedural-go/wfc
package wfc
