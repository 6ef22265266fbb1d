// Package matrix_test contains unit tests for the Dense cost-table store.
package matrix_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/paretodp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFilled(-1, 2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.False(t, m.Contains(2, 0))
	require.True(t, m.Contains(1, 1))
}

// TestInfPolicy checks that +Inf is accepted while NaN and -Inf are rejected.
func TestInfPolicy(t *testing.T) {
	m, err := matrix.NewFilled(2, 3, math.Inf(1))
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaN)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaN)
	require.ErrorIs(t, m.Fill(math.NaN()), matrix.ErrNaN)
	require.NoError(t, m.Set(0, 0, 4.5))
}

// TestRowIsView verifies Row returns a view of the backing storage.
func TestRowIsView(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.0))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 7}, col)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

// TestConcurrentDistinctCells writes every column of one row from its own goroutine.
func TestConcurrentDistinctCells(t *testing.T) {
	const cols = 64
	m, err := matrix.NewFilled(2, cols, math.Inf(1))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for j := 0; j < cols; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			_ = m.Set(1, j, float64(j))
		}(j)
	}
	wg.Wait()

	row, err := m.Row(1)
	require.NoError(t, err)
	for j, v := range row {
		require.Equal(t, float64(j), v)
	}
}

// TestString renders +Inf as ∞.
func TestString(t *testing.T) {
	m, err := matrix.NewFilled(1, 2, math.Inf(1))
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 2))
	require.Equal(t, "[2, ∞]\n", m.String())
}
