// SPDX-License-Identifier: MIT
package deriv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Covariance returns the inverse Hessian of the negative log-density f at its
// mode x, the Laplace/Wald covariance of the free parameters.
//
// Errors: ErrNotPositiveDefinite when x is not a strict local minimum.
func Covariance(d Differentiator, f func([]float64) float64, x []float64) (*mat.SymDense, error) {
	h, err := d.Hessian(f, x)
	if err != nil {
		return nil, fmt.Errorf("Covariance: %w", err)
	}

	return InvertSPD(h)
}

// InvertSPD inverts a symmetric positive-definite matrix via Cholesky.
func InvertSPD(a mat.Symmetric) (*mat.SymDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, fmt.Errorf("InvertSPD: %w", ErrNotPositiveDefinite)
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, fmt.Errorf("InvertSPD: %w: %w", ErrNotPositiveDefinite, err)
	}

	return &inv, nil
}

// DeltaMethod propagates cov through g at x: Var(g(x)) ≈ J·cov·Jᵀ with
// J = ∂g/∂x (m×n). It returns the propagated covariance and its standard
// deviations.
func DeltaMethod(d Differentiator, g func(y, x []float64), m int, x []float64, cov mat.Symmetric) (*mat.SymDense, []float64, error) {
	if cov == nil || cov.SymmetricDim() != len(x) {
		return nil, nil, fmt.Errorf("DeltaMethod: covariance vs %d parameters: %w", len(x), ErrDimensionMismatch)
	}
	j, err := d.Jacobian(g, m, x)
	if err != nil {
		return nil, nil, fmt.Errorf("DeltaMethod: %w", err)
	}

	var jc, full mat.Dense
	jc.Mul(j, cov)
	full.Mul(&jc, j.T())

	out := mat.NewSymDense(m, nil)
	var r, c int
	for r = 0; r < m; r++ {
		for c = r; c < m; c++ {
			out.SetSym(r, c, 0.5*(full.At(r, c)+full.At(c, r))) // symmetrize rounding
		}
	}

	return out, StdDevs(out), nil
}

// StdDevs returns sqrt of the diagonal. Negative variances give NaN.
func StdDevs(cov mat.Symmetric) []float64 {
	n := cov.SymmetricDim()
	sd := make([]float64, n)
	for i := range sd {
		sd[i] = math.Sqrt(cov.At(i, i))
	}

	return sd
}
