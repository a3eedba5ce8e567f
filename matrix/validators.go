// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for the product a×b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil with length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []complex128, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every entry of m has finite real and imaginary parts.
//
// Errors: ErrNilMatrix, ErrNaNInf (with the first offending coordinates).
// Complexity: O(r*c), first-hit exit.
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for idx, v := range m.data {
		if !isFinite(v) {
			return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return nil
}

// ValidateFiniteVec ensures every component of x is finite.
//
// Errors: ErrNilMatrix, ErrNaNInf.
func ValidateFiniteVec(x []complex128) error {
	if x == nil {
		return validatorErrorf("ValidateFiniteVec", ErrNilMatrix)
	}
	for i, v := range x {
		if !isFinite(v) {
			return validatorErrorf("ValidateFiniteVec", fmt.Errorf("x[%d]: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateHermitian checks A[i,j] == conj(A[j,i]) within tol for all i<=j
// (the diagonal must be real within tol).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
// Complexity: O(n^2) over the upper triangle, first-hit exit.
func ValidateHermitian(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateHermitian", err)
	}
	n := m.r
	var i, j int
	var a, b complex128
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			a = m.data[i*n+j]
			b = m.data[j*n+i]
			if absDiff(a, conj(b)) > tol {
				return validatorErrorf("ValidateHermitian",
					fmt.Errorf("(%d,%d): %w", i, j, ErrNotHermitian))
			}
		}
	}

	return nil
}
