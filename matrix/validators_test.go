// SPDX-License-Identifier: Apache-2.0
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/finlib/debtcut/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateVecLen covers matching and mismatched vector lengths.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2, 3}, 3))
	err := matrix.ValidateVecLen([]float64{1, 2}, 3)
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}
