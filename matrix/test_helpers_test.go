// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nhlattice/matrix"
)

// tol is the default entry-wise tolerance for floating comparisons.
const tol = 1e-10

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]complex128) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) complex128 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// fillRand fills m with deterministic complex values in [-1,1]+i[-1,1] and
// adds shift to the diagonal (a large shift keeps the matrix well conditioned).
func fillRand(tb testing.TB, m *matrix.Dense, seed int64, shift float64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			if i == j {
				v += complex(shift, 0)
			}
			if err := m.Set(i, j, v); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// maxDiff returns the max entry-wise modulus difference, failing on shape errors.
func maxDiff(tb testing.TB, a, b *matrix.Dense) float64 {
	tb.Helper()
	d, err := matrix.MaxAbsDiff(a, b)
	if err != nil {
		tb.Fatalf("MaxAbsDiff: %v", err)
	}

	return d
}

// vecClose reports whether |a[i]−b[i]| ≤ eps for all i.
func vecClose(a, b []complex128, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}
