// SPDX-License-Identifier: MIT
// Package matrix provides element-wise and product kernels on *Dense:
// addition, subtraction, scaling, the shifted form αI + βA, matrix
// multiplication, matrix-vector products and the conjugate transpose.
// All kernels perform strict fail-fast validation, allocate a fresh result
// and never mutate their operands.
//
// Notes:
//   - Factorization kernels (LU, Solve, Inverse) live in lu.go.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ZeroSum is the initial value for accumulations (dot products, substitutions).
const ZeroSum complex128 = 0

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opScale         = "Scale"
	opShiftScale    = "ShiftScale"
	opMul           = "Mul"
	opMatVec        = "MatVec"
	opConjTranspose = "ConjTranspose"
	opAddDiagonal   = "AddDiagonal"
	opLU            = "LU"
	opSolve         = "Solve"
	opInverse       = "Inverse"
	opMaxAbsDiff    = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A − B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range m.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// ShiftScale returns alpha*I + beta*m for a square m.
// This is the building block of rational propagators such as
// (I ± iHΔt/2), computed in one pass without an explicit identity.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func ShiftScale(m *Dense, alpha, beta complex128) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opShiftScale, err)
	}
	n := m.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opShiftScale, err)
	}
	for idx, v := range m.data {
		res.data[idx] = beta * v
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] += alpha
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop walks rows of B and C
//     contiguously; zero a(i,k) entries are skipped (hopping matrices are sparse).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j, baseA, baseB, baseC int
	var aik complex128
	for i = 0; i < rows; i++ {
		baseA = i * inner
		baseC = i * cols
		for k = 0; k < inner; k++ {
			aik = a.data[baseA+k]
			if aik == 0 {
				continue
			}
			baseB = k * cols
			for j = 0; j < cols; j++ {
				res.data[baseC+j] += aik * b.data[baseB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, m.r)
	var i, j, base int
	var acc complex128
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if x[j] != 0 {
				acc += m.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}

// ConjTranspose returns the Hermitian adjoint mᴴ.
// Complexity: O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// IsHermitian reports whether m equals its conjugate transpose within the
// configured epsilon (WithEpsilon; DefaultEpsilon otherwise).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare. A Hermiticity violation is (false, nil).
func IsHermitian(m *Dense, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	err := ValidateHermitian(m, o.eps)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotHermitian):
		return false, nil
	default:
		return false, err
	}
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| over all entries.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst, d float64
	for idx := range a.data {
		d = cmplx.Abs(a.data[idx] - b.data[idx])
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}

// conj is a local alias to keep hot loops terse.
func conj(v complex128) complex128 { return cmplx.Conj(v) }

// absDiff returns |a − b|.
func absDiff(a, b complex128) float64 { return cmplx.Abs(a - b) }
