// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so the origin is obvious in
// logs of the evolution engine. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is needed; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch -> NaN/Inf -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, Mul where a.Cols != b.Rows, or a
	// vector whose length differs from the matrix column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf component (real or imaginary part)
	// where finite values are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when LU factorization meets a pivot whose
	// magnitude does not exceed the pivot tolerance, even after row exchange.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotHermitian signals that a matrix expected to be Hermitian violated
	// A[i,j] == conj(A[j,i]) within the configured epsilon.
	ErrNotHermitian = errors.New("matrix: matrix is not Hermitian within eps")
)
