package tiling

import (
	"fmt"

	"github.com/kelindar/bitmap"

	"github.com/procedural-go/wfc/direction"
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
)

// actionDirections maps actions 0..7 to the direction each asserts the
// lifted pair is compatible in: actions 0..3 are successive 90-degree
// rotations of the base Right assertion (Right, Down, Left, Up); actions
// 4..7 repeat that after a reflection, which swaps left and right (Left,
// Up, Right, Down).
var actionDirections = [8]direction.Direction{
	direction.Right, direction.Down, direction.Left, direction.Up,
	direction.Left, direction.Up, direction.Right, direction.Down,
}

// orientedTiles holds the result of expanding every tile's symmetry
// class into its distinct oriented variants.
type orientedTiles[S Symbol] struct {
	patterns   []*grid2d.Grid2D[S] // oriented pattern content, indexed by oriented id
	weights    []float64           // indexed by oriented id
	idToTile   []int               // oriented id -> tile index
	idToOrient []int               // oriented id -> base orientation within that tile
	orientedOf [][]int             // tile index -> its oriented ids, consecutive
	side       int                 // tile content side length (content is side x side)
}

// expandTiles validates and expands every tile into its oriented
// variants: oriented ids are assigned consecutively per tile, in
// generateOriented's order, and each
// orientation's weight is the tile's weight split evenly across its
// orientation count.
// Complexity: O(tiles * orientations * side^2).
func expandTiles[S Symbol](tiles []Tile[S]) (*orientedTiles[S], error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("tiling.expandTiles: %w", ErrEmptyTiles)
	}

	side := tiles[0].Content.Height()
	ot := &orientedTiles[S]{
		orientedOf: make([][]int, len(tiles)),
		side:       side,
	}

	for ti, tile := range tiles {
		h, w := tile.Content.Height(), tile.Content.Width()
		if h != w {
			return nil, fmt.Errorf("tiling.expandTiles: tile %d is %dx%d: %w", ti, h, w, ErrNonSquareTileContent)
		}
		if h != side {
			return nil, fmt.Errorf("tiling.expandTiles: tile %d has side %d, want %d: %w", ti, h, side, ErrNonSquareTileContent)
		}
		count := tile.Symmetry.OrientationCount()
		if count == 0 {
			return nil, fmt.Errorf("tiling.expandTiles: tile %d: %w", ti, ErrUnknownSymmetryClass)
		}

		variants := generateOriented(tile.Content, tile.Symmetry)
		ids := make([]int, 0, count)
		perOrientationWeight := tile.Weight / float64(count)
		for o, variant := range variants {
			ids = append(ids, len(ot.patterns))
			ot.patterns = append(ot.patterns, variant)
			ot.weights = append(ot.weights, perOrientationWeight)
			ot.idToTile = append(ot.idToTile, ti)
			ot.idToOrient = append(ot.idToOrient, o)
		}
		ot.orientedOf[ti] = ids
	}

	return ot, nil
}

// liftNeighbors builds the dense compatibility matrix from the neighbor
// list and sparsifies it into a CompatTable. For each neighbor entry and
// each of the 8
// actions, the action map rotates/reflects both tiles' declared
// orientations in lockstep, and the resulting oriented pair is marked
// compatible in the action's direction AND the symmetric inverse entry —
// writing into gidB's row at gidA (not gidB again), which is the
// corrected form of the tiling_wfc.rs source's flagged typo; see
// DESIGN.md.
// Complexity: O(neighbors * 8 + orientedPatterns^2 * 4) for the dense
// matrix allocation and sparsify pass.
func liftNeighbors[S Symbol](tiles []Tile[S], neighbors []NeighborEntry, ot *orientedTiles[S]) (*propagator.CompatTable, error) {
	n := len(ot.patterns)
	dense := make([][4]bitmap.Bitmap, n)
	for i := range dense {
		for d := 0; d < 4; d++ {
			dense[i][d].Grow(uint32(n))
		}
	}

	for _, ne := range neighbors {
		if ne.TileA < 0 || ne.TileA >= len(tiles) || ne.TileB < 0 || ne.TileB >= len(tiles) {
			return nil, fmt.Errorf("tiling.liftNeighbors: %w", ErrTileIndexOutOfRange)
		}
		countA := tiles[ne.TileA].Symmetry.OrientationCount()
		countB := tiles[ne.TileB].Symmetry.OrientationCount()
		if ne.OrientA < 0 || ne.OrientA >= countA || ne.OrientB < 0 || ne.OrientB >= countB {
			return nil, fmt.Errorf("tiling.liftNeighbors: %w", ErrOrientationOutOfRange)
		}

		actionMapA := actionMap(tiles[ne.TileA].Symmetry)
		actionMapB := actionMap(tiles[ne.TileB].Symmetry)

		for action := 0; action < 8; action++ {
			orientA := actionMapA[action][ne.OrientA]
			orientB := actionMapB[action][ne.OrientB]
			gidA := ot.orientedOf[ne.TileA][orientA]
			gidB := ot.orientedOf[ne.TileB][orientB]

			d := actionDirections[action]
			dense[gidA][d.Index()].Set(uint32(gidB))
			dense[gidB][d.Opposite().Index()].Set(uint32(gidA))
		}
	}

	ct := propagator.NewCompatTable(n)
	for gid := 0; gid < n; gid++ {
		for _, d := range direction.Directions() {
			var qs []int
			for q := 0; q < n; q++ {
				if dense[gid][d.Index()].Contains(uint32(q)) {
					qs = append(qs, q)
				}
			}
			ct.Set(gid, d, qs)
		}
	}

	return ct, nil
}
