// SPDX-License-Identifier: MIT
package evolve_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/stretchr/testify/require"
)

// MustNRSSH builds an NRSSH chain or fails the test.
func MustNRSSH(tb testing.TB, cells int, v, u, r float64) *lattice.NRSSH {
	tb.Helper()
	top, err := lattice.NewNRSSH(cells, lattice.NRSSHHopping{V: v, U: u, R: r})
	require.NoError(tb, err)

	return top
}

// MustDiamond builds a Diamond chain or fails the test.
func MustDiamond(tb testing.TB, cells int, t1, t2, t3, t4 float64) *lattice.Diamond {
	tb.Helper()
	top, err := lattice.NewDiamond(cells, lattice.DiamondHopping{T1: t1, T2: t2, T3: t3, T4: t4})
	require.NoError(tb, err)

	return top
}

// randomState returns a deterministic normalized complex state of length n.
func randomState(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	phi := make([]complex128, n)
	var norm float64
	for i := range phi {
		phi[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		norm += real(phi[i])*real(phi[i]) + imag(phi[i])*imag(phi[i])
	}
	s := complex(1/math.Sqrt(norm), 0)
	for i := range phi {
		phi[i] *= s
	}

	return phi
}

// maxVecDiff returns max |a_i − b_i|.
func maxVecDiff(a, b []complex128) float64 {
	var worst float64
	for i := range a {
		d := a[i] - b[i]
		if m := math.Hypot(real(d), imag(d)); m > worst {
			worst = m
		}
	}

	return worst
}
