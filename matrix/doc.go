// SPDX-License-Identifier: MIT

// Package matrix provides dense complex linear algebra for lattice
// Hamiltonians and their propagators.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-safe At/Set and an
//     optional finite-only numeric policy.
//   - Element-wise and product kernels (Add, Sub, Scale, Mul, MatVec,
//     ConjTranspose, ShiftScale) that never mutate their inputs.
//   - LU factorization with partial pivoting, linear solves and Inverse,
//     reporting ErrSingular instead of silently producing NaN/Inf.
//   - Structural checks (IsHermitian, ValidateFinite) used by the
//     evolution engine to tell unitary from non-unitary dynamics.
//
// Matrices here are small-to-medium (a few hundred sites) and dense; every
// kernel has fixed loop orders so identical inputs give bit-identical
// outputs.
//
//	h, _ := matrix.NewDense(n, n)
//	_ = h.Set(0, 1, 0.5)
//	inv, err := matrix.Inverse(h)
//	if errors.Is(err, matrix.ErrSingular) {
//		// no inverse exists
//	}
package matrix
