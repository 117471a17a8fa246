// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse row storage & safe kernels.
//
// Purpose:
//   - Hold penalty and reporting-design matrices without materializing zeros.
//   - Guarantee safety at the public surface: Get/MulVec/QuadForm return errors
//     instead of panicking. At panics only to honor the gonum mat.Matrix contract.
//   - Keep algorithmic determinism (fixed row→entry loop orders, sorted columns).
//
// Complexity quicksheet:
//   - NewCSR: O(k log k) for k triplets; Get: O(log nnz_row); MulVec: O(nnz);
//     QuadForm: O(nnz); Block: O(1).
package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewCSR"
	ctxGet      = "Get"
	ctxMulVec   = "MulVec"
	ctxQuadForm = "QuadForm"
	ctxBlock    = "Block"
	ctxFromMat  = "CSRFromDense"
)

// csrErrorf wraps a sentinel with a uniform CSR method context.
func csrErrorf(method string, err error) error {
	return fmt.Errorf("CSR.%s: %w", method, err)
}

// CSR is an immutable compressed-sparse-row matrix.
//   - indptr has length r+1; row i occupies indices[indptr[i]:indptr[i+1]].
//   - Column indices are strictly increasing within a row (no duplicates).
type CSR struct {
	r, c    int       // row and column counts (>0)
	indptr  []int     // row pointer, len == r+1
	indices []int     // column index per stored entry, len == nnz
	data    []float64 // value per stored entry, len == nnz
}

// Compile-time assertion: *CSR can be used wherever gonum expects a mat.Matrix.
var _ mat.Matrix = (*CSR)(nil)

// NewCSR assembles an r×c CSR matrix from coordinate triplets.
// Implementation:
//   - Stage 1: validate shape, indices and (policy) finiteness.
//   - Stage 2: sort a copy of the triplets by (row, col).
//   - Stage 3: merge duplicates by summation; drop entries with |v| <= eps.
//
// Errors: ErrBadShape, ErrOutOfRange, ErrNaNInf (all wrapped with "CSR.NewCSR").
// Complexity: Time O(k log k), Space O(k) for k=len(ts).
func NewCSR(rows, cols int, ts []Triplet, opts ...Option) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf(ctxNew, ErrBadShape)
	}
	o := gatherOptions(opts...)

	var t Triplet
	for _, t = range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("CSR.%s: (%d,%d): %w", ctxNew, t.Row, t.Col, ErrOutOfRange)
		}
		if o.validateNaNInf && (math.IsNaN(t.Value) || math.IsInf(t.Value, 0)) {
			return nil, fmt.Errorf("CSR.%s: (%d,%d): %w", ctxNew, t.Row, t.Col, ErrNaNInf)
		}
	}

	// Work on a copy; the caller's slice is never reordered.
	sorted := slices.Clone(ts)
	slices.SortStableFunc(sorted, func(a, b Triplet) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}

		return cmp.Compare(a.Col, b.Col)
	})

	m := &CSR{
		r:       rows,
		c:       cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(sorted)),
		data:    make([]float64, 0, len(sorted)),
	}

	var (
		k, next int
		acc     float64
	)
	for k = 0; k < len(sorted); k = next {
		t = sorted[k]
		acc = t.Value
		for next = k + 1; next < len(sorted) && sorted[next].Row == t.Row && sorted[next].Col == t.Col; next++ {
			acc += sorted[next].Value // duplicates are summed
		}
		if math.Abs(acc) <= o.eps {
			continue // structural zero
		}
		m.indices = append(m.indices, t.Col)
		m.data = append(m.data, acc)
		m.indptr[t.Row+1]++
	}
	// Prefix-sum the per-row counts into row pointers.
	var i int
	for i = 0; i < rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}

	return m, nil
}

// CSRFromDense converts any gonum matrix into CSR, keeping entries with |v| > eps.
// Complexity: Time O(r*c), Space O(nnz).
func CSRFromDense(a mat.Matrix, opts ...Option) (*CSR, error) {
	if a == nil {
		return nil, csrErrorf(ctxFromMat, ErrNilMatrix)
	}
	rows, cols := a.Dims()
	ts := make([]Triplet, 0, rows)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = a.At(i, j)
			if v != 0 {
				ts = append(ts, Triplet{Row: i, Col: j, Value: v})
			}
		}
	}

	return NewCSR(rows, cols, ts, opts...)
}

// Rows returns the row count. Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// Dims implements mat.Matrix.
func (m *CSR) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// find locates column col in row row and returns (position, found).
// Complexity: O(log nnz_row).
func (m *CSR) find(row, col int) (int, bool) {
	lo, hi := m.indptr[row], m.indptr[row+1]
	p := lo + sort.SearchInts(m.indices[lo:hi], col)

	return p, p < hi && m.indices[p] == col
}

// Get returns element (i, j) or ErrOutOfRange.
// Complexity: O(log nnz_row).
func (m *CSR) Get(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("CSR.%s(%d,%d): %w", ctxGet, i, j, ErrOutOfRange)
	}
	if p, ok := m.find(i, j); ok {
		return m.data[p], nil
	}

	return 0, nil
}

// At implements mat.Matrix. Following the gonum contract it panics with
// mat.ErrIndexOutOfRange on invalid indices; prefer Get in user-facing code.
func (m *CSR) At(i, j int) float64 {
	v, err := m.Get(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

// T implements mat.Matrix with an implicit (no-copy) transpose.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Do calls f for every stored entry in row-major order.
// Complexity: O(nnz).
func (m *CSR) Do(f func(i, j int, v float64)) {
	var i, p int
	for i = 0; i < m.r; i++ {
		for p = m.indptr[i]; p < m.indptr[i+1]; p++ {
			f(i, m.indices[p], m.data[p])
		}
	}
}

// MulVec computes y = m·x.
//
// Contract: len(x) == Cols().
// Determinism: fixed row→entry loop order.
// Complexity: Time O(nnz), Space O(r) for y.
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, csrErrorf(ctxMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, csrErrorf(ctxMulVec, err)
	}
	y := make([]float64, m.r)

	var (
		i, p int
		acc  float64
	)
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		for p = m.indptr[i]; p < m.indptr[i+1]; p++ {
			acc += m.data[p] * x[m.indices[p]]
		}
		y[i] = acc
	}

	return y, nil
}

// QuadForm computes xᵀ·m·x without densifying.
//
// Contract: m square; len(x) == Rows().
// Complexity: Time O(nnz), Space O(1).
func (m *CSR) QuadForm(x []float64) (float64, error) {
	if m == nil {
		return 0, csrErrorf(ctxQuadForm, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, csrErrorf(ctxQuadForm, err)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return 0, csrErrorf(ctxQuadForm, err)
	}

	return m.quadRange(0, m.r, x), nil
}

// quadRange accumulates Σ x[i-off]·a(i,j)·x[j-off] over the diagonal block
// [off, off+n)². Entries outside the block columns are skipped.
// Assumes bounds were validated by the caller.
func (m *CSR) quadRange(off, n int, x []float64) float64 {
	var (
		i, p, lo, hi, end int
		rowAcc, acc       float64
	)
	end = off + n
	acc = ZeroSum
	for i = off; i < end; i++ {
		lo, hi = m.indptr[i], m.indptr[i+1]
		// Skip to the first stored column >= off.
		p = lo + sort.SearchInts(m.indices[lo:hi], off)
		rowAcc = ZeroSum
		for ; p < hi && m.indices[p] < end; p++ {
			rowAcc += m.data[p] * x[m.indices[p]-off]
		}
		acc += x[i-off] * rowAcc
	}

	return acc
}

// Block returns a no-copy view of the diagonal block [off, off+n)².
//
// Errors: ErrNonSquare when m is not square; ErrOutOfRange when the window
// leaves the matrix or n <= 0.
// Complexity: Time O(1), Space O(1).
func (m *CSR) Block(off, n int) (*BlockView, error) {
	if m == nil {
		return nil, csrErrorf(ctxBlock, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, csrErrorf(ctxBlock, err)
	}
	if off < 0 || n <= 0 || off+n > m.r {
		return nil, fmt.Errorf("CSR.%s(%d,%d): %w", ctxBlock, off, n, ErrOutOfRange)
	}

	return &BlockView{base: m, off: off, n: n}, nil
}

// ToDense materializes the matrix as a gonum *mat.Dense (tests, reporting).
// Complexity: Time O(r*c), Space O(r*c).
func (m *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(m.r, m.c, nil)
	m.Do(func(i, j int, v float64) { d.Set(i, j, v) })

	return d
}

// BlockView is a non-owning window over a diagonal block of a square CSR.
// Not implementing mat.Matrix on purpose: it exists only to feed the
// per-block kernels without copying.
type BlockView struct {
	base *CSR // underlying storage owner
	off  int  // first row/column of the block in base
	n    int  // block order
}

// Size returns the block order.
func (v *BlockView) Size() int { return v.n }

// Offset returns the first row/column of the block in the base matrix.
func (v *BlockView) Offset() int { return v.off }

// QuadForm computes xᵀ·B·x for the viewed block B.
// Contract: len(x) == Size().
// Complexity: O(nnz in the block rows).
func (v *BlockView) QuadForm(x []float64) (float64, error) {
	if err := ValidateVecLen(x, v.n); err != nil {
		return 0, fmt.Errorf("BlockView.%s: %w", ctxQuadForm, err)
	}

	return v.base.quadRange(v.off, v.n, x), nil
}
