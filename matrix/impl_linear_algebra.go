// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels the equilibrium solver
// needs: matrix-vector multiplication (used to verify the residual of a
// candidate solution) and Gauss-Jordan reduction to reduced row echelon
// form. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels must use central validators and return plain sentinels or wrapped via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec = "MatVec"
	opRREF   = "ReduceToRREF"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = 0
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	var i, j int
	var mv float64
	for i = 0; i < rows; i++ {
		y[i] = 0
		for j = 0; j < cols; j++ {
			mv, _ = m.At(i, j)
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// ReduceToRREF reduces m to reduced row echelon form in place and returns
// the ordered list of pivot columns (one entry per pivot row, in row order).
//
// Contract: m non-nil.
//
// Determinism & Performance:
//   - Pivot search within a column scans rows top-to-bottom and picks the
//     entry of largest magnitude (partial pivoting) for numerical stability;
//     ties are broken by the lower row index, so repeated solves of the same
//     system produce the same pivot sequence.
//   - A column with no entry exceeding eps (in absolute value, among the
//     remaining rows) is treated as free and skipped; it contributes no
//     pivot.
//
// Complexity: Time O(rows * cols * min(rows,cols)), Space O(1) extra.
func ReduceToRREF(m Matrix, eps float64) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	d, ok := m.(*Dense)
	if !ok {
		return nil, matrixErrorf(opRREF, fmt.Errorf("ReduceToRREF requires *Dense: %w", ErrMatrixNotImplemented))
	}

	rows, cols := d.r, d.c
	pivotCols := make([]int, 0, rows)
	pivotRow := 0

	// cols-1 excludes the augmentation column: it holds the right-hand
	// side, never a coefficient, so it must never become a pivot column.
	for col := 0; col < cols-1 && pivotRow < rows; col++ {
		best := pivotRow
		bestAbs := math.Abs(d.data[pivotRow*cols+col])
		for r := pivotRow + 1; r < rows; r++ {
			v := math.Abs(d.data[r*cols+col])
			if v > bestAbs {
				best = r
				bestAbs = v
			}
		}
		if bestAbs <= eps {
			continue // no usable pivot in this column; it is a free column
		}

		if best != pivotRow {
			if err := d.swapRows(pivotRow, best); err != nil {
				return nil, matrixErrorf(opRREF, err)
			}
		}

		pivotVal := d.data[pivotRow*cols+col]
		if err := d.scaleRow(pivotRow, 1.0/pivotVal); err != nil {
			return nil, matrixErrorf(opRREF, err)
		}

		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := d.data[r*cols+col]
			if factor == 0 {
				continue
			}
			if err := d.addMultipleOfRow(r, pivotRow, -factor); err != nil {
				return nil, matrixErrorf(opRREF, err)
			}
		}

		pivotCols = append(pivotCols, col)
		pivotRow++
	}

	return pivotCols, nil
}

// HasSolution reports whether the augmented system represented by m (with
// the last column holding the right-hand side) is consistent, given that m
// has already been reduced via ReduceToRREF with the returned pivotCols.
// It is inconsistent only if some row has all zero coefficients but a
// non-zero right-hand side beyond eps — i.e. "0 = nonzero".
func HasSolution(m Matrix, pivotCols []int, eps float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("HasSolution", err)
	}
	rows, cols := m.Rows(), m.Cols()
	rhsCol := cols - 1

	isPivotRow := make([]bool, rows)
	for i, pc := range pivotCols {
		if pc >= rhsCol {
			continue // ReduceToRREF never pivots on the RHS column; defensive only
		}
		if i < rows {
			isPivotRow[i] = true
		}
	}

	for r := 0; r < rows; r++ {
		if isPivotRow[r] {
			continue
		}
		allZero := true
		for c := 0; c < rhsCol; c++ {
			v, err := m.At(r, c)
			if err != nil {
				return false, matrixErrorf("HasSolution", err)
			}
			if math.Abs(v) > eps {
				allZero = false
				break
			}
		}
		if allZero {
			rhs, err := m.At(r, rhsCol)
			if err != nil {
				return false, matrixErrorf("HasSolution", err)
			}
			if math.Abs(rhs) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
