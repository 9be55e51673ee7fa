package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procedural-go/wfc/direction"
	"github.com/procedural-go/wfc/grid2d"
	"github.com/procedural-go/wfc/propagator"
	"github.com/procedural-go/wfc/solver"
	"github.com/procedural-go/wfc/tiling"
)

func mustTile(t *testing.T, rows [][]int, sc tiling.SymmetryClass, weight float64) tiling.Tile[int] {
	t.Helper()
	g, err := grid2d.FromRows(rows)
	require.NoError(t, err)

	return tiling.Tile[int]{Content: g, Symmetry: sc, Weight: weight}
}

// TestOrientationExpansionCounts checks an L-symmetry tile expands to 4
// oriented variants whose weights each equal tile.Weight/4, and a
// P-symmetry tile expands to 8 with weight/8 each.
func TestOrientationExpansionCounts(t *testing.T) {
	lTile := mustTile(t, [][]int{{1, 0}, {1, 1}}, tiling.SymmetryL, 4.0)
	pTile := mustTile(t, [][]int{{1, 2}, {3, 4}}, tiling.SymmetryP, 8.0)

	cfg := tiling.Config{
		OutHeight: 2,
		OutWidth:  2,
		Neighbors: []tiling.NeighborEntry{
			{TileA: 0, OrientA: 0, TileB: 0, OrientB: 0},
			{TileA: 1, OrientA: 0, TileB: 1, OrientB: 0},
		},
	}

	model, err := tiling.Build([]tiling.Tile[int]{lTile, pTile}, cfg)
	require.NoError(t, err)

	weights := model.Weights()
	require.Len(t, weights, 4+8)
	for i := 0; i < 4; i++ {
		require.InDelta(t, 1.0, weights[i], 1e-9)
	}
	for i := 4; i < 12; i++ {
		require.InDelta(t, 1.0, weights[i], 1e-9)
	}
}

// TestLiftNeighborsIsSymmetric verifies that the neighbor-lift always
// writes both an entry and its opposite-direction inverse (the corrected
// form of tiling_wfc.rs's flagged typo; see DESIGN.md), so the resulting
// compat table passes CheckSymmetry.
func TestLiftNeighborsIsSymmetric(t *testing.T) {
	a := mustTile(t, [][]int{{1}}, tiling.SymmetryX, 1.0)
	b := mustTile(t, [][]int{{2}}, tiling.SymmetryX, 1.0)

	cfg := tiling.Config{
		OutHeight: 3,
		OutWidth:  3,
		Neighbors: []tiling.NeighborEntry{
			{TileA: 0, OrientA: 0, TileB: 1, OrientB: 0},
		},
	}

	model, err := tiling.Build([]tiling.Tile[int]{a, b}, cfg)
	require.NoError(t, err)
	require.True(t, model.Compat().CheckSymmetry())
}

// TestLiftedCompatIsDirectionAsymmetric pairs an L-symmetry tile (4 distinct
// orientations, so a 180-degree rotation is not the identity) with a single
// X-symmetry tile. The single neighbor declaration lifts to a compat table
// where orientation 0 of the L tile is compatible with the X tile to its
// Right but not to its Left — unlike every other fixture in this package,
// this table cannot be mistaken for direction-symmetric. Banning the X
// tile at one end of a 2-cell strip must ban exactly the L orientations
// whose only support came from that specific direction, which a decrement
// that targets the wrong direction's counter slot would miss entirely.
func TestLiftedCompatIsDirectionAsymmetric(t *testing.T) {
	lTile := mustTile(t, [][]int{{1}}, tiling.SymmetryL, 1.0)
	xTile := mustTile(t, [][]int{{2}}, tiling.SymmetryX, 1.0)

	cfg := tiling.Config{
		OutHeight: 1,
		OutWidth:  2,
		Neighbors: []tiling.NeighborEntry{
			{TileA: 0, OrientA: 0, TileB: 1, OrientB: 0},
		},
	}

	model, err := tiling.Build([]tiling.Tile[int]{lTile, xTile}, cfg)
	require.NoError(t, err)
	compat := model.Compat()
	require.True(t, compat.CheckSymmetry())

	const gL0, gL3, xID = 0, 3, 4
	require.NotEqual(t, compat.Get(gL0, direction.Right), compat.Get(gL0, direction.Left),
		"orientation 0 of the L tile must have different Right and Left compat sets")

	p, err := propagator.New(1, 2, model.Weights(), compat, false)
	require.NoError(t, err)
	require.NoError(t, p.Ban(0, 1, xID))

	allowed0, err := p.Wave().Get(0, 0, gL0)
	require.NoError(t, err)
	require.False(t, allowed0, "L orientation 0 only neighbored the X tile to its Right and must be banned")

	allowed3, err := p.Wave().Get(0, 0, gL3)
	require.NoError(t, err)
	require.False(t, allowed3, "L orientation 3 only neighbored the X tile to its Right and must be banned")

	for _, o := range []int{1, 2} {
		allowed, err := p.Wave().Get(0, 0, o)
		require.NoError(t, err)
		require.True(t, allowed, "L orientation %d does not have the X tile as a Right neighbor and must remain allowed", o)
	}
}

// TestSingleTileSelfTilingSolves builds a single X-symmetry tile that only
// neighbors itself in every direction and checks Generate produces a
// fully-decided HxW grid of that tile's single oriented id.
func TestSingleTileSelfTilingSolves(t *testing.T) {
	solo := mustTile(t, [][]int{{7}}, tiling.SymmetryX, 1.0)
	cfg := tiling.Config{
		OutHeight: 3,
		OutWidth:  3,
		Periodic:  false,
		Neighbors: []tiling.NeighborEntry{
			{TileA: 0, OrientA: 0, TileB: 0, OrientB: 0},
		},
	}

	out, err := tiling.Generate([]tiling.Tile[int]{solo}, cfg, solver.Seed{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	require.NoError(t, err)
	require.Equal(t, 3, out.Height())
	require.Equal(t, 3, out.Width())
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			v := out.MustAt(y, x)
			require.Equal(t, 7, v)
		}
	}
}

// TestInvalidNeighborEntryTileIndex checks out-of-range tile indices are
// rejected rather than panicking.
func TestInvalidNeighborEntryTileIndex(t *testing.T) {
	solo := mustTile(t, [][]int{{7}}, tiling.SymmetryX, 1.0)
	cfg := tiling.Config{
		OutHeight: 2,
		OutWidth:  2,
		Neighbors: []tiling.NeighborEntry{
			{TileA: 0, OrientA: 0, TileB: 5, OrientB: 0},
		},
	}

	_, err := tiling.Build([]tiling.Tile[int]{solo}, cfg)
	require.ErrorIs(t, err, tiling.ErrTileIndexOutOfRange)
}

// TestNonSquareTileContentRejected checks non-square tile content fails
// validation before any oriented expansion is attempted.
func TestNonSquareTileContentRejected(t *testing.T) {
	wide := mustTile(t, [][]int{{1, 2, 3}}, tiling.SymmetryX, 1.0)
	cfg := tiling.Config{OutHeight: 2, OutWidth: 2}

	_, err := tiling.Build([]tiling.Tile[int]{wide}, cfg)
	require.ErrorIs(t, err, tiling.ErrNonSquareTileContent)
}
