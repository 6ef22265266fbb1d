package verify_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/pointset"
	"github.com/katalvlaran/paretodp/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostGroupsByLabel(t *testing.T) {
	ps, err := pointset.New(5, 1, []float64{0, 10, 1, 11, 2})
	require.NoError(t, err)

	// {0,1,2} and {10,11}; labels need not be contiguous positions.
	got, err := verify.Cost(ps, []int{1, 2, 1, 2, 1}, cost.Medoids)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = verify.Cost(ps, []int{1, 2, 1, 2, 1}, cost.Median)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	// Unassigned points are skipped.
	got, err = verify.Cost(ps, []int{1, 0, 1, 0, 0}, cost.Medoids)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	_, err = verify.Cost(ps, []int{1}, cost.Medoids)
	require.ErrorIs(t, err, verify.ErrLabelCount)
}

func TestCheck(t *testing.T) {
	require.NoError(t, verify.Check(2, 2+1e-9))
	require.NoError(t, verify.Check(math.Inf(1), math.Inf(1)))
	require.ErrorIs(t, verify.Check(2, 2.001), verify.ErrCostMismatch)
	require.ErrorIs(t, verify.Check(math.NaN(), 1), verify.ErrCostMismatch)
}

// TestSolutionAgreesWithEngine checks the engine optimum on random inputs.
func TestSolutionAgreesWithEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, c := range []cost.Criterion{cost.Medoids, cost.Median} {
		for trial := 0; trial < 5; trial++ {
			n, d := 20+rng.Intn(30), 1+rng.Intn(3)
			coords := make([]float64, n*d)
			for i := range coords {
				coords[i] = rng.NormFloat64() * 5
			}
			ps, err := pointset.New(n, d, coords)
			require.NoError(t, err)

			e := dp.New(c, dp.DefaultOptions())
			e.SetPoints(ps)
			e.SetDefaultClusterCount()
			require.NoError(t, e.Solve())

			verified, err := verify.Solution(e)
			require.NoError(t, err, "%s trial %d", c, trial)
			assert.InDelta(t, e.SolutionCost(), verified, verify.Tolerance)
		}
	}
}

func TestSolutionWithoutPoints(t *testing.T) {
	_, err := verify.Solution(dp.New(cost.Medoids, dp.DefaultOptions()))
	require.ErrorIs(t, err, dp.ErrInvalidConfiguration)
}
