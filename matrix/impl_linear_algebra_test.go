// Package matrix_test contains unit tests for the universal linear-algebra
// kernels in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/finlib/debtcut/matrix"
	"github.com/stretchr/testify/require"
)

func denseFrom(t *testing.T, rows, cols int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i*cols+j]))
		}
	}
	return m
}

func TestMatVec_Succeeds(t *testing.T) {
	a := denseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, y)
}

func TestMatVec_RejectsLengthMismatch(t *testing.T) {
	a := denseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	_, err := matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestReduceToRREF_UniqueSolution reduces a system with a unique solution
// and checks the extracted solution sits in the RHS column of each pivot row.
func TestReduceToRREF_UniqueSolution(t *testing.T) {
	// x + y = 3
	// x - y = 1  -> x=2, y=1
	m := denseFrom(t, 2, 3, []float64{
		1, 1, 3,
		1, -1, 1,
	})

	pivots, err := matrix.ReduceToRREF(m, 1e-9)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivots)

	x, _ := m.At(0, 2)
	y, _ := m.At(1, 2)
	require.InDelta(t, 2.0, x, 1e-9)
	require.InDelta(t, 1.0, y, 1e-9)

	ok, err := matrix.HasSolution(m, pivots, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestReduceToRREF_FreeColumn leaves an underdetermined column unreduced.
func TestReduceToRREF_FreeColumn(t *testing.T) {
	// x + y + z = 3, 2x + 2y + 2z = 6 (redundant row; z free)
	m := denseFrom(t, 2, 4, []float64{
		1, 1, 1, 3,
		2, 2, 2, 6,
	})

	pivots, err := matrix.ReduceToRREF(m, 1e-9)
	require.NoError(t, err)
	require.Equal(t, []int{0}, pivots)

	ok, err := matrix.HasSolution(m, pivots, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestReduceToRREF_ThreeByThree reduces a classic 3-equation system to a
// unique solution (2, 3, -1).
func TestReduceToRREF_ThreeByThree(t *testing.T) {
	m := denseFrom(t, 3, 4, []float64{
		2, 1, -1, 8,
		-3, -1, 2, -11,
		-2, 1, 2, -3,
	})

	pivots, err := matrix.ReduceToRREF(m, 1e-9)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, pivots)

	x, _ := m.At(0, 3)
	y, _ := m.At(1, 3)
	z, _ := m.At(2, 3)
	require.InDelta(t, 2.0, x, 1e-6)
	require.InDelta(t, 3.0, y, 1e-6)
	require.InDelta(t, -1.0, z, 1e-6)

	ok, err := matrix.HasSolution(m, pivots, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestReduceToRREF_DuplicateThenContradictoryRow mirrors spec Scenario 5's
// second matrix: a duplicate row followed by a contradictory one must be
// detected as inconsistent.
func TestReduceToRREF_DuplicateThenContradictoryRow(t *testing.T) {
	m := denseFrom(t, 3, 3, []float64{
		1, 1, 2,
		1, 1, 2,
		1, 1, 5,
	})

	pivots, err := matrix.ReduceToRREF(m, 1e-9)
	require.NoError(t, err)

	ok, err := matrix.HasSolution(m, pivots, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestReduceToRREF_Inconsistent detects a "0 = nonzero" row.
func TestReduceToRREF_Inconsistent(t *testing.T) {
	m := denseFrom(t, 2, 3, []float64{
		1, 1, 3,
		1, 1, 5,
	})

	pivots, err := matrix.ReduceToRREF(m, 1e-9)
	require.NoError(t, err)

	ok, err := matrix.HasSolution(m, pivots, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)
}
