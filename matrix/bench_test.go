// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tpsgam/matrix"
)

// benchmarkQuadForms runs BlockDiag.QuadForms over k tridiagonal blocks of order n.
func benchmarkQuadForms(b *testing.B, k, n int) {
	ts := make([]matrix.Triplet, 0, 3*k*n)
	dims := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		ts = append(ts, tridiag(i*n, n)...)
		dims[i] = n
	}
	s := mustCSR(b, k*n, k*n, ts)
	bd, err := matrix.NewBlockDiag(s, dims)
	if err != nil {
		b.Fatalf("NewBlockDiag failed: %v", err)
	}
	x := make([]float64, k*n)
	for i = range x {
		x[i] = float64(i%7) - 3
	}

	b.ResetTimer()
	for i = 0; i < b.N; i++ {
		if _, err = bd.QuadForms(x); err != nil {
			b.Fatalf("QuadForms failed: %v", err)
		}
	}
}

// BenchmarkQuadForms_5x40 mirrors a five-surface thin-plate penalty.
func BenchmarkQuadForms_5x40(b *testing.B) { benchmarkQuadForms(b, 5, 40) }

// BenchmarkQuadForms_20x200 stresses larger bases.
func BenchmarkQuadForms_20x200(b *testing.B) { benchmarkQuadForms(b, 20, 200) }
