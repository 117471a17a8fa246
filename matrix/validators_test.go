// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tpsgam/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBlockDims covers empty, non-positive, short and exact sequences.
func TestValidateBlockDims(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		dims  []int
		total int
		want  error
	}{
		{"empty", nil, 3, matrix.ErrBlockDims},
		{"zero order", []int{2, 0, 1}, 3, matrix.ErrBlockDims},
		{"negative order", []int{4, -1}, 3, matrix.ErrBlockDims},
		{"sum too small", []int{1, 1}, 3, matrix.ErrBlockDims},
		{"sum too large", []int{2, 2}, 3, matrix.ErrBlockDims},
		{"single block", []int{3}, 3, nil},
		{"unit blocks", []int{1, 1, 1}, 3, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBlockDims(tc.dims, tc.total)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateSquareAndVecLen covers the shape validators.
func TestValidateSquareAndVecLen(t *testing.T) {
	t.Parallel()

	sq, err := matrix.NewCSR(2, 2, nil)
	require.NoError(t, err)
	rect, err := matrix.NewCSR(2, 3, nil)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
}
