package wave_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procedural-go/wfc/wave"
)

// fixedRand always returns the same draw; good enough for tests that don't
// depend on tie-break randomness.
type fixedRand struct{ v uint32 }

func (f fixedRand) Uint32() uint32 { return f.v }

// seqRand returns successive values from a slice, wrapping if exhausted.
type seqRand struct {
	vals []uint32
	i    int
}

func (s *seqRand) Uint32() uint32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestNewRejectsNonPositiveWeight(t *testing.T) {
	_, err := wave.New(2, 2, []float64{1, 0})
	require.ErrorIs(t, err, wave.ErrNonPositiveWeight)
}

func TestNewRejectsEmptyWeights(t *testing.T) {
	_, err := wave.New(2, 2, nil)
	require.ErrorIs(t, err, wave.ErrEmptyWeights)
}

func TestGetAllAllowedInitially(t *testing.T) {
	w, err := wave.New(2, 2, []float64{1, 2, 3})
	require.NoError(t, err)
	for p := 0; p < 3; p++ {
		allowed, err := w.Get(0, 0, p)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	n, err := w.NumAllowed(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestBanIsMonotoneAndIdempotent(t *testing.T) {
	w, err := wave.New(1, 1, []float64{1, 1, 1})
	require.NoError(t, err)

	banned, err := w.Ban(0, 0, 1)
	require.NoError(t, err)
	require.True(t, banned)

	allowed, _ := w.Get(0, 0, 1)
	require.False(t, allowed)

	// idempotent: banning again changes nothing and reports banned=false
	banned, err = w.Ban(0, 0, 1)
	require.NoError(t, err)
	require.False(t, banned)

	n, _ := w.NumAllowed(0, 0)
	require.Equal(t, 2, n)
}

func TestEntropyMatchesExplicitSum(t *testing.T) {
	weights := []float64{1, 2, 4}
	w, err := wave.New(1, 1, weights)
	require.NoError(t, err)

	require.NoError(t, mustBan(w, 0, 0, 1))

	// explicit recompute over currently-allowed patterns (0 and 2)
	sum := weights[0] + weights[2]
	plogp := weights[0]*math.Log(weights[0]) + weights[2]*math.Log(weights[2])
	want := math.Log(sum) - plogp/sum

	got, err := w.Entropy(0, 0)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-12)
}

func mustBan(w *wave.Wave, y, x, p int) error {
	_, err := w.Ban(y, x, p)
	return err
}

func TestMinEntropyCellDetectsContradiction(t *testing.T) {
	w, err := wave.New(1, 2, []float64{1, 1})
	require.NoError(t, err)
	require.NoError(t, mustBan(w, 0, 0, 0))
	require.NoError(t, mustBan(w, 0, 0, 1))

	obs := w.MinEntropyCell(fixedRand{})
	require.Equal(t, wave.Contradiction, obs.Status)
	require.Equal(t, 0, obs.Y)
	require.Equal(t, 0, obs.X)
}

func TestMinEntropyCellDetectsFinished(t *testing.T) {
	w, err := wave.New(1, 2, []float64{1, 1})
	require.NoError(t, err)
	require.NoError(t, mustBan(w, 0, 0, 1))
	require.NoError(t, mustBan(w, 0, 1, 0))

	obs := w.MinEntropyCell(fixedRand{})
	require.Equal(t, wave.Finished, obs.Status)
}

func TestMinEntropyCellSelectsLowerEntropy(t *testing.T) {
	// cell (0,0) has 2 equally-weighted patterns (higher entropy);
	// cell (0,1) has 2 patterns with very skewed weights (lower entropy).
	w, err := wave.New(1, 2, []float64{1, 1, 100})
	require.NoError(t, err)
	// (0,0): ban pattern 2, leaving {0,1} with equal weight -> entropy ln2
	require.NoError(t, mustBan(w, 0, 0, 2))
	// (0,1): ban pattern 0, leaving {1,100} heavily skewed -> low entropy
	require.NoError(t, mustBan(w, 0, 1, 0))

	obs := w.MinEntropyCell(fixedRand{})
	require.Equal(t, wave.Selected, obs.Status)
	require.Equal(t, 0, obs.Y)
	require.Equal(t, 1, obs.X)
}

func TestMinEntropyCellTieBreakIsDeterministicPerDrawSequence(t *testing.T) {
	// two cells, both with identical 2-pattern allow-sets (tied entropy):
	// the cell whose draw is smaller wins.
	w, err := wave.New(1, 2, []float64{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, mustBan(w, 0, 0, 2))
	require.NoError(t, mustBan(w, 0, 1, 2))

	rng := &seqRand{vals: []uint32{10, 5}}
	obs := w.MinEntropyCell(rng)
	require.Equal(t, wave.Selected, obs.Status)
	require.Equal(t, 0, obs.Y)
	require.Equal(t, 1, obs.X) // second cell drew the smaller value
}

func TestResetRestoresFullAllowSet(t *testing.T) {
	w, err := wave.New(1, 1, []float64{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, mustBan(w, 0, 0, 0))
	n, _ := w.NumAllowed(0, 0)
	require.Equal(t, 2, n)

	w.Reset()
	n, _ = w.NumAllowed(0, 0)
	require.Equal(t, 3, n)
	allowed, _ := w.Get(0, 0, 0)
	require.True(t, allowed)
}
