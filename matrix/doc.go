// Package matrix offers sparse storage and kernels for smoothness penalties.
//
// The matrix package provides:
//
//   - CSR, an immutable compressed-sparse-row matrix assembled from
//     coordinate triplets, usable anywhere gonum expects a mat.Matrix.
//   - MulVec and QuadForm kernels that never materialize zeros.
//   - BlockDiag, a square CSR partitioned into contiguous diagonal blocks,
//     with a per-block quadratic form evaluated through no-copy BlockViews.
//
// Public kernels return sentinel errors (see errors.go) instead of panicking;
// callers match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
