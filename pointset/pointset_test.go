package pointset_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/paretodp/pointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation verifies shape checks on construction.
func TestNew_Validation(t *testing.T) {
	_, err := pointset.New(0, 2, nil)
	assert.ErrorIs(t, err, pointset.ErrFormat, "N=0 must be rejected")

	_, err = pointset.New(2, 0, nil)
	assert.ErrorIs(t, err, pointset.ErrFormat, "D=0 must be rejected")

	_, err = pointset.New(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, pointset.ErrFormat, "short buffer must be rejected")

	_, err = pointset.FromPoints([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, pointset.ErrFormat, "ragged points must be rejected")
}

// TestNew_CopiesInput ensures the caller's slice is not aliased.
func TestNew_CopiesInput(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	ps, err := pointset.New(2, 2, in)
	require.NoError(t, err)

	in[0] = 100
	assert.Equal(t, 1.0, ps.Coord(0, 0))
	assert.Equal(t, []float64{3, 4}, ps.Point(1))
	assert.Len(t, ps.Labels(), 2)
}

// TestDistances checks squared and plain Euclidean distance.
func TestDistances(t *testing.T) {
	ps, err := pointset.FromPoints([][]float64{{0, 0}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, 25.0, ps.SquaredDistance(0, 1))
	assert.Equal(t, 5.0, ps.Distance(1, 0))
	assert.Equal(t, 0.0, ps.Distance(1, 1))
}

// TestLabels covers SetLabel bounds and ResetLabels.
func TestLabels(t *testing.T) {
	ps, err := pointset.New(3, 1, []float64{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, ps.SetLabel(2, 5))
	assert.Equal(t, 5, ps.Label(2))
	assert.ErrorIs(t, ps.SetLabel(3, 1), pointset.ErrOutOfRange)
	assert.ErrorIs(t, ps.SetLabel(0, -1), pointset.ErrOutOfRange)

	ps.ResetLabels()
	assert.Equal(t, []int{0, 0, 0}, ps.Labels())
}

// TestClone verifies deep copy semantics.
func TestClone(t *testing.T) {
	ps, err := pointset.New(2, 1, []float64{2, 1})
	require.NoError(t, err)
	cp := ps.Clone()

	cp.EnsureSorted()
	require.NoError(t, cp.SetLabel(0, 1))

	assert.Equal(t, 2.0, ps.Coord(0, 0), "original untouched by sorting the clone")
	assert.Equal(t, 0, ps.Label(0))
	assert.False(t, math.IsNaN(cp.Coord(1, 0)))
}
