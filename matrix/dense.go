// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int
	data           []complex128
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// NewDiagonal returns a square matrix with diag on its main diagonal.
//
// Errors:
//   - ErrNilMatrix for a nil/empty diagonal, ErrNaNInf for non-finite entries.
func NewDiagonal(diag []complex128) (*Dense, error) {
	if len(diag) == 0 {
		return nil, ErrNilMatrix
	}
	n := len(diag)
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range diag {
		if err = d.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// NewFromRows builds a Dense from a rectangular [][]complex128 (deep copy).
//
// Errors:
//   - ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged rows,
//     ErrNaNInf for non-finite entries.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds.
func (m *Dense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when the policy is on and
//     either component of v is NaN or ±Inf.
func (m *Dense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the copy never reach the original.
func (m *Dense) Clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]complex128, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Diagonal returns a copy of the main diagonal (length min(r,c)).
func (m *Dense) Diagonal() []complex128 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// AddDiagonal adds v[i] to element (i,i) in place.
//
// Errors:
//   - ErrNonSquare for non-square receivers, ErrDimensionMismatch when
//     len(v) != Rows(), ErrNaNInf when the result is non-finite under policy.
func (m *Dense) AddDiagonal(v []complex128) error {
	if m.r != m.c {
		return matrixErrorf(opAddDiagonal, ErrNonSquare)
	}
	if len(v) != m.r {
		return matrixErrorf(opAddDiagonal, ErrDimensionMismatch)
	}
	var off int
	for i := 0; i < m.r; i++ {
		off = i*m.c + i
		m.data[off] += v[i]
		if m.validateNaNInf && !isFinite(m.data[off]) {
			return matrixErrorf(opAddDiagonal, denseErrorf(ctxSet, i, i, ErrNaNInf))
		}
	}

	return nil
}

// RealParts returns the real parts as a row-major [][]float64.
func (m *Dense) RealParts() [][]float64 {
	out := make([][]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		for j = 0; j < m.c; j++ {
			out[i][j] = real(m.data[i*m.c+j])
		}
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isFinite reports whether both components of v are finite.
func isFinite(v complex128) bool {
	if cmplx.IsNaN(v) {
		return false
	}
	re, im := real(v), imag(v)

	return !math.IsInf(re, 0) && !math.IsInf(im, 0)
}
