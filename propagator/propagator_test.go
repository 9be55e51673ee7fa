package propagator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procedural-go/wfc/direction"
	"github.com/procedural-go/wfc/propagator"
)

const (
	patA = 0
	patB = 1
)

// selfOnlyCompat builds a 2-pattern table where A is compatible only with
// A, and B only with B, in every direction (two mutually exclusive
// "checkerboard-free" fields).
func selfOnlyCompat() *propagator.CompatTable {
	ct := propagator.NewCompatTable(2)
	for _, d := range direction.Directions() {
		ct.Set(patA, d, []int{patA})
		ct.Set(patB, d, []int{patB})
	}

	return ct
}

func TestCompatTableSymmetryHolds(t *testing.T) {
	ct := selfOnlyCompat()
	require.True(t, ct.CheckSymmetry())
}

func TestCompatTableSymmetryCanFail(t *testing.T) {
	ct := propagator.NewCompatTable(2)
	// asymmetric on purpose: A claims B to its Right, but B does not claim
	// A to its Left.
	ct.Set(patA, direction.Right, []int{patB})
	require.False(t, ct.CheckSymmetry())
}

func TestBanPropagatesAcrossUniformField(t *testing.T) {
	// 1x3 non-toric strip; banning A at the left cell should force every
	// other cell to B as well, since A only tolerates A as a neighbor.
	p, err := propagator.New(1, 3, []float64{1, 1}, selfOnlyCompat(), false)
	require.NoError(t, err)

	require.NoError(t, p.Ban(0, 0, patA))

	for x := 0; x < 3; x++ {
		n, err := p.Wave().NumAllowed(0, x)
		require.NoError(t, err)
		require.Equal(t, 1, n, "cell (0,%d) should be decided", x)
		allowed, err := p.Wave().Get(0, x, patB)
		require.NoError(t, err)
		require.True(t, allowed, "cell (0,%d) should have collapsed to B", x)
	}
}

func TestBanDetectsContradiction(t *testing.T) {
	// 1x2 strip: banning B at cell 1 forces cell 1 to A, and propagation
	// forces cell 0 to A too (A only tolerates A). Banning A at cell 0 then
	// empties cell 0, and propagation removes A from cell 1, leaving zero
	// allowed patterns at cell 1.
	p, err := propagator.New(1, 2, []float64{1, 1}, selfOnlyCompat(), false)
	require.NoError(t, err)

	require.NoError(t, p.Ban(0, 1, patB)) // cell 1 forced to A
	require.NoError(t, p.Ban(0, 0, patA)) // cell 0 forced to B, propagates

	n, err := p.Wave().NumAllowed(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, n, "cell (0,1) should be a contradiction")
}

func TestArcConsistencyAtQuiescence(t *testing.T) {
	ct := selfOnlyCompat()
	p, err := propagator.New(1, 3, []float64{1, 1}, ct, false)
	require.NoError(t, err)
	require.NoError(t, p.Ban(0, 0, patA))

	// At quiescence, every still-allowed pattern at every cell must have,
	// for each direction, at least one supporting neighbor pattern —
	// arc-consistency at fixpoint.
	for x := 0; x < 3; x++ {
		for pat := 0; pat < 2; pat++ {
			allowed, _ := p.Wave().Get(0, x, pat)
			if !allowed {
				continue
			}
			for _, d := range direction.Directions() {
				dy, dx := d.Unit()
				ny, nx := 0+dy, x+dx
				if ny < 0 || ny >= 1 || nx < 0 || nx >= 3 {
					continue // border: non-toric, no neighbor to check
				}
				hasSupport := false
				for _, q := range ct.Get(pat, d) {
					na, _ := p.Wave().Get(ny, nx, q)
					if na {
						hasSupport = true
						break
					}
				}
				require.True(t, hasSupport, "pattern %d at (0,%d) dir %s has no support", pat, x, d)
			}
		}
	}
}

// chainCompat builds a direction-asymmetric 3-pattern table: 0 tolerates 1
// to its Right, 1 tolerates 0 to its Left and 2 to its Right, 2 tolerates 1
// to its Left. Unlike selfOnlyCompat, compat[p][d] differs from
// compat[p][d.Opposite()], so this table can distinguish a same-direction
// decrement from an opposite-direction one.
func chainCompat() *propagator.CompatTable {
	ct := propagator.NewCompatTable(3)
	ct.Set(0, direction.Right, []int{1})
	ct.Set(1, direction.Left, []int{0})
	ct.Set(1, direction.Right, []int{2})
	ct.Set(2, direction.Left, []int{1})

	return ct
}

func TestChainCompatIsSymmetric(t *testing.T) {
	require.True(t, chainCompat().CheckSymmetry())
}

func TestBanPropagatesAlongAsymmetricChain(t *testing.T) {
	// 1x3 non-toric strip, patterns 0-1-2 left to right. Banning 1 at the
	// middle cell removes pattern 2's only supporter (1 to its Left), so
	// pattern 2 must be banned at the right cell too.
	p, err := propagator.New(1, 3, []float64{1, 1, 1}, chainCompat(), false)
	require.NoError(t, err)

	require.NoError(t, p.Ban(0, 1, 1))

	allowed, err := p.Wave().Get(0, 2, 2)
	require.NoError(t, err)
	require.False(t, allowed, "pattern 2 at (0,2) lost its only supporter and must be banned")

	// patterns 0 and 1 at (0,2) were never a neighbor of the banned cell in
	// a direction that mentions them, so they remain allowed.
	allowed0, err := p.Wave().Get(0, 2, 0)
	require.NoError(t, err)
	require.True(t, allowed0)
	allowed1, err := p.Wave().Get(0, 2, 1)
	require.NoError(t, err)
	require.True(t, allowed1)
}

func TestToricWraps(t *testing.T) {
	p, err := propagator.New(1, 3, []float64{1, 1}, selfOnlyCompat(), true)
	require.NoError(t, err)
	require.NoError(t, p.Ban(0, 0, patA))
	// toric: the ban at column 0 also propagates around to column 2's
	// right neighbor (column 0) and should still collapse every cell to B.
	for x := 0; x < 3; x++ {
		allowed, _ := p.Wave().Get(0, x, patB)
		require.True(t, allowed)
	}
}

func TestResetRestoresInitialCounters(t *testing.T) {
	p, err := propagator.New(1, 2, []float64{1, 1}, selfOnlyCompat(), false)
	require.NoError(t, err)
	require.NoError(t, p.Ban(0, 0, patA))

	p.Reset()
	n, err := p.Wave().NumAllowed(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	n, err = p.Wave().NumAllowed(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// the same ban must propagate again, which needs cell 1's counters back
	// at their initial values rather than left at zero from the first ban.
	require.NoError(t, p.Ban(0, 0, patA))
	n, err = p.Wave().NumAllowed(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	allowed, err := p.Wave().Get(0, 1, patB)
	require.NoError(t, err)
	require.True(t, allowed)
}
