// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting, linear solves and
// inversion for complex square matrices.
//
// Determinism & Policy:
//   - Row exchange picks the first row holding the largest |pivot| in the
//     current column (strict '>' comparison), so ties resolve identically
//     on every run.
//   - A pivot with |pivot| <= PivotTolerance (or NaN) yields ErrSingular.
//     No kernel returns a result containing NaN/Inf produced by division by
//     a vanishing pivot.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// LUFactors holds PA = LU in compact form.
//   - lu stores L strictly below the diagonal (unit diagonal implied) and U on/above it.
//   - perm[i] is the original row placed at position i.
//   - swaps counts row exchanges (parity of the permutation).
type LUFactors struct {
	n     int
	lu    []complex128
	perm  []int
	swaps int
}

// Size returns n for an n×n factorization.
func (f *LUFactors) Size() int { return f.n }

// Determinant returns det(A) = (−1)^swaps · Π U[i,i].
// Complexity: O(n).
func (f *LUFactors) Determinant() complex128 {
	det := complex(1, 0)
	if f.swaps%2 == 1 {
		det = -det
	}
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// LU computes the partially pivoted factorization PA = LU.
//
// Implementation:
//   - Stage 1: Validate m (non-nil, square); copy it into the work buffer.
//   - Stage 2: For k=0..n-1: pick the pivot row p ≥ k maximizing |a(p,k)|,
//     swap rows k and p, check the pivot, eliminate below it.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m *Dense, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := m.r
	f := &LUFactors{
		n:    n,
		lu:   make([]complex128, len(m.data)),
		perm: make([]int, n),
	}
	copy(f.lu, m.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	a := f.lu
	var i, j, k, p, baseK, baseI int
	var best, mag float64
	var pivot, factor complex128
	for k = 0; k < n; k++ {
		// Partial pivoting: first row with the largest magnitude wins.
		p = k
		best = cmplx.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			mag = cmplx.Abs(a[i*n+k])
			if mag > best {
				best, p = mag, i
			}
		}
		if best <= o.pivotTol || math.IsNaN(best) {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			swapRows(a, n, k, p)
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.swaps++
		}

		baseK = k * n
		pivot = a[baseK+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			if a[baseI+k] == 0 {
				continue
			}
			factor = a[baseI+k] / pivot
			a[baseI+k] = factor
			for j = k + 1; j < n; j++ {
				a[baseI+j] -= factor * a[baseK+j]
			}
		}
	}

	return f, nil
}

// Solve returns x with A·x = b using the stored factors.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (f *LUFactors) Solve(b []complex128) ([]complex128, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]complex128, f.n)
	f.solveInto(x, b)

	return x, nil
}

// solveInto writes A⁻¹b into x (len n). Forward substitution on the
// permuted RHS, then backward substitution on U.
func (f *LUFactors) solveInto(x, b []complex128) {
	n, a := f.n, f.lu
	var i, k, base int
	var sum complex128
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		base = i * n
		for k = 0; k < i; k++ {
			sum -= a[base+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		base = i * n
		for k = i + 1; k < n; k++ {
			sum -= a[base+k] * x[k]
		}
		x[i] = sum / a[base+i]
	}
}

// Inverse computes A⁻¹ via partially pivoted LU, one column per basis vector.
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular (vanishing pivot).
//   - ErrNaNInf when the finite-value policy is on and the result is not
//     finite (overflow on badly conditioned input).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv.validateNaNInf = o.validateNaNInf

	e := make([]complex128, n)
	x := make([]complex128, n)
	var col, i int
	for col = 0; col < n; col++ {
		e[col] = 1
		f.solveInto(x, e)
		e[col] = 0
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}
	if o.validateNaNInf {
		if err = ValidateFinite(inv); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	return inv, nil
}

// swapRows exchanges rows r1 and r2 of an n-column row-major buffer.
func swapRows(a []complex128, n, r1, r2 int) {
	b1, b2 := r1*n, r2*n
	for j := 0; j < n; j++ {
		a[b1+j], a[b2+j] = a[b2+j], a[b1+j]
	}
}
