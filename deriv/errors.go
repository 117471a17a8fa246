// SPDX-License-Identifier: MIT
package deriv

import "errors"

var (
	// ErrNotPositiveDefinite indicates a Hessian whose Cholesky factorization
	// failed, so no covariance can be formed.
	ErrNotPositiveDefinite = errors.New("deriv: matrix is not positive definite")

	// ErrDimensionMismatch indicates inconsistent vector or matrix sizes.
	ErrDimensionMismatch = errors.New("deriv: dimension mismatch")
)
