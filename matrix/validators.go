// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/block checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with their own context.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *CSR) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m *CSR) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBlockDims checks that every block order is positive and that the
// orders sum to total.
// Complexity: O(len(dims)).
func ValidateBlockDims(dims []int, total int) error {
	if len(dims) == 0 {
		return validatorErrorf("ValidateBlockDims: empty", ErrBlockDims)
	}

	var sum, d int
	for _, d = range dims {
		if d <= 0 {
			return validatorErrorf(fmt.Sprintf("ValidateBlockDims: order %d", d), ErrBlockDims)
		}
		sum += d
	}
	if sum != total {
		return validatorErrorf(fmt.Sprintf("ValidateBlockDims: sum %d != %d", sum, total), ErrBlockDims)
	}

	return nil
}
