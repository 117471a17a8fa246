// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse kernels.
// This file contains ONLY value types; errors and options live in
// errors.go and options.go.
package matrix

// Triplet is one (row, col, value) coordinate entry used to assemble a CSR.
// Duplicated coordinates are summed during assembly.
type Triplet struct {
	Row   int     // 0-based row index
	Col   int     // 0-based column index
	Value float64 // entry value; must be finite under the default policy
}

// ZeroSum is the neutral accumulator for dot-product style loops.
const ZeroSum = 0.0
