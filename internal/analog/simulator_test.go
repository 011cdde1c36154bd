package analog

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fibduality/internal/errors"
)

func TestSimulateMultiplication_NoiselessIsExact(t *testing.T) {
	t.Parallel()

	sim := New(Options{}, WithNoiseSource(Noiseless()))

	res, err := sim.SimulateMultiplication(big.NewInt(8), big.NewInt(13), 1.0)
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(104), res.TrueProduct)
	assert.InDelta(t, 104.0, res.MeasuredProduct, 1e-9)
	assert.InDelta(t, 0.0, res.ErrorPercent, 1e-9)
	// Active cells are the prefix through min(8, 13)'s position: the two
	// unit cells plus 2, 3, 5, 8.
	assert.Equal(t, 6, res.ActiveCells)
}

func TestSimulateMultiplication_VoltageScalesMeasurement(t *testing.T) {
	t.Parallel()

	sim := New(Options{}, WithNoiseSource(Noiseless()))

	res, err := sim.SimulateMultiplication(big.NewInt(13), big.NewInt(21), 2.0)
	require.NoError(t, err)

	// Doubling the read voltage doubles the reconstructed product.
	assert.InDelta(t, 2*273.0, res.MeasuredProduct, 1e-9)
}

func TestSimulateMultiplication_RejectsNonFibonacci(t *testing.T) {
	t.Parallel()

	sim := New(Options{}, WithNoiseSource(Noiseless()))

	_, err := sim.SimulateMultiplication(big.NewInt(6), big.NewInt(13), 1.0)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err), "want InvalidInputError, got %v", err)

	_, err = sim.SimulateMultiplication(big.NewInt(13), big.NewInt(100), 1.0)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))

	// Values beyond the table bound are rejected too, even though they
	// are Fibonacci numbers mathematically.
	beyond := big.NewInt(832040) // F(30), outside the default 23-term table
	_, err = sim.SimulateMultiplication(beyond, big.NewInt(13), 1.0)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestSimulateMultiplication_SeededRunsAreReproducible(t *testing.T) {
	t.Parallel()

	first := New(Options{Seed: 42})
	second := New(Options{Seed: 42})

	a, b := big.NewInt(34), big.NewInt(55)
	res1, err := first.SimulateMultiplication(a, b, 1.0)
	require.NoError(t, err)
	res2, err := second.SimulateMultiplication(a, b, 1.0)
	require.NoError(t, err)

	assert.Equal(t, res1.MeasuredProduct, res2.MeasuredProduct)
	assert.Equal(t, res1.ErrorPercent, res2.ErrorPercent)
	assert.Equal(t, res1.SNRdB, res2.SNRdB)
}

func TestSimulateMultiplication_NoisyRunStaysFinite(t *testing.T) {
	t.Parallel()

	sim := New(Options{Seed: 7, NoiseStd: 0.05})

	res, err := sim.SimulateMultiplication(big.NewInt(144), big.NewInt(233), 1.0)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(res.SNRdB) || math.IsInf(res.SNRdB, 0), "SNR must be finite")
	assert.False(t, math.IsNaN(res.ErrorPercent), "error percent must be a number")
	assert.Greater(t, res.MeasuredProduct, 0.0)
}

func TestSimulateGCD_ConsecutivePair(t *testing.T) {
	t.Parallel()

	sim := New(Options{}, WithNoiseSource(Noiseless()))

	res, err := sim.SimulateGCDComputation(big.NewInt(34), big.NewInt(55))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(1), res.GCD)
	// The walk deactivates every distinct active value 34, 21, ..., 1;
	// the initial divisor 55 is outside the active set.
	assert.Equal(t, 8, res.Steps)
	require.Len(t, res.CellsDeactivated, 8)
	assert.Empty(t, res.FinalActiveCells)

	// First removal is the largest active divisor.
	assert.Equal(t, big.NewInt(34), res.CellsDeactivated[0].Deactivated)
	// Remaining conductance decreases monotonically and ends at zero.
	prev := math.Inf(1)
	for _, step := range res.CellsDeactivated {
		assert.Less(t, step.RemainingConductance, prev)
		prev = step.RemainingConductance
	}
	assert.Equal(t, 0.0, res.CellsDeactivated[len(res.CellsDeactivated)-1].RemainingConductance)
}

func TestSimulateGCD_StepIndicesFollowPath(t *testing.T) {
	t.Parallel()

	sim := New(Options{}, WithNoiseSource(Noiseless()))

	res, err := sim.SimulateGCDComputation(big.NewInt(8), big.NewInt(13))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(1), res.GCD)
	// Path divisors are 13, 8, 5, 3, 2, 1; the first is not an active
	// cell (min is 8), so the recorded walk starts at path index 1.
	require.Equal(t, 5, res.Steps)
	wantValues := []int64{8, 5, 3, 2, 1}
	for i, step := range res.CellsDeactivated {
		assert.Equal(t, i+1, step.Step)
		assert.Equal(t, big.NewInt(wantValues[i]), step.Deactivated)
	}
}

func TestSimulateGCD_RejectsNonFibonacci(t *testing.T) {
	t.Parallel()

	sim := New(Options{}, WithNoiseSource(Noiseless()))

	_, err := sim.SimulateGCDComputation(big.NewInt(9), big.NewInt(13))
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestSimulateGCD_EqualOperands(t *testing.T) {
	t.Parallel()

	sim := New(Options{}, WithNoiseSource(Noiseless()))

	res, err := sim.SimulateGCDComputation(big.NewInt(13), big.NewInt(13))
	require.NoError(t, err)

	// One step (13 divides itself); only the 13 cell is removed.
	assert.Equal(t, big.NewInt(13), res.GCD)
	assert.Equal(t, 1, res.Steps)
	// 1, 2, 3, 5, 8 stay active.
	require.Len(t, res.FinalActiveCells, 5)
	assert.Equal(t, big.NewInt(1), res.FinalActiveCells[0])
	assert.Equal(t, big.NewInt(8), res.FinalActiveCells[4])
}

func TestNoiseSources(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Noiseless().Sample(1, 0.5))

	a := NewRandomNoise(99)
	b := NewRandomNoise(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Sample(1, 0.05), b.Sample(1, 0.05), "same seed must replay the same draws")
	}
}
