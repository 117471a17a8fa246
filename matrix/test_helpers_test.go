// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tpsgam/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// epsTiny is the absolute tolerance used for exact-arithmetic comparisons
// that may still accumulate rounding in a different summation order.
const epsTiny = 1e-12

// mustCSR builds a CSR or fails the test.
func mustCSR(t testing.TB, r, c int, ts []matrix.Triplet, opts ...matrix.Option) *matrix.CSR {
	t.Helper()
	m, err := matrix.NewCSR(r, c, ts, opts...)
	require.NoError(t, err)

	return m
}

// denseQuad computes xᵀAx with gonum as an independent reference.
func denseQuad(a mat.Matrix, x []float64) float64 {
	v := mat.NewVecDense(len(x), x)

	return mat.Inner(v, a, v)
}

// tridiag returns the n×n [-1 2 -1] second-difference penalty placed on the
// diagonal at offset off.
func tridiag(off, n int) []matrix.Triplet {
	ts := make([]matrix.Triplet, 0, 3*n)
	var i int
	for i = 0; i < n; i++ {
		ts = append(ts, matrix.Triplet{Row: off + i, Col: off + i, Value: 2})
		if i+1 < n {
			ts = append(ts,
				matrix.Triplet{Row: off + i, Col: off + i + 1, Value: -1},
				matrix.Triplet{Row: off + i + 1, Col: off + i, Value: -1},
			)
		}
	}

	return ts
}
