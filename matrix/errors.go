// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (optionally wrapped with call-site
// context) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Kernels wrap with fmt.Errorf("CSR.<Method>: %w", ErrX) at the
// detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index/NaN -> dimension mismatch -> block structure.

var (
	// ErrNilMatrix indicates that a nil *CSR (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row/column index lies outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf entry rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. a vector
	// whose length differs from the number of columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBlockDims signals an invalid block-dimension sequence: a non-positive
	// entry, or a sum that differs from the matrix order.
	ErrBlockDims = errors.New("matrix: invalid block dimensions")

	// ErrNotBlockDiagonal signals a non-zero entry outside every declared
	// diagonal block (strict block policy only).
	ErrNotBlockDiagonal = errors.New("matrix: entry outside declared diagonal blocks")
)
