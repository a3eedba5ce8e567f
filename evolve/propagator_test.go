// SPDX-License-Identifier: MIT
package evolve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without gain/loss a Hermitian H yields a unitary U: UᴴU = I and the total
// intensity is conserved across many steps.
func TestPropagator_UnitaryForHermitian(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		top  lattice.Topology
	}{
		{"nrssh reciprocal cells=50", MustNRSSH(t, 50, 0.5, 0.5, 0.9)},
		{"diamond cells=33", MustDiamond(t, 33, 0.2, 0.5, 0.9, 0.4)},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, 100, tc.top.Sites())

			phi, err := evolve.Excitation(tc.top.Sites(), 0)
			require.NoError(t, err)
			h, err := lattice.Assemble(tc.top, phi, lattice.Onsite{Saturation: 1})
			require.NoError(t, err)
			ok, err := matrix.IsHermitian(h)
			require.NoError(t, err)
			require.True(t, ok)

			u, err := evolve.Propagator(h, 0.01)
			require.NoError(t, err)
			uh, err := matrix.ConjTranspose(u)
			require.NoError(t, err)
			prod, err := matrix.Mul(uh, u)
			require.NoError(t, err)
			id, err := matrix.NewIdentity(tc.top.Sites())
			require.NoError(t, err)
			d, err := matrix.MaxAbsDiff(prod, id)
			require.NoError(t, err)
			assert.LessOrEqual(t, d, 1e-10)

			for step := 0; step < 100; step++ {
				prev := evolve.TotalIntensity(phi)
				phi, err = evolve.Step(u, phi)
				require.NoError(t, err)
				require.InDelta(t, prev, evolve.TotalIntensity(phi), 1e-10, "step %d", step)
			}
			assert.InDelta(t, 1, evolve.TotalIntensity(phi), 1e-10)
		})
	}
}

// v != u makes the intra-cell hopping non-reciprocal: H is not Hermitian even
// with γ1 = γ2 = 0, so U is not unitary.
func TestPropagator_NonReciprocalIsNotUnitary(t *testing.T) {
	t.Parallel()

	top := MustNRSSH(t, 50, 0.2, 0.5, 0.9)
	h, err := lattice.AssembleStatic(top, 0)
	require.NoError(t, err)
	ok, err := matrix.IsHermitian(h)
	require.NoError(t, err)
	assert.False(t, ok)

	u, err := evolve.Propagator(h, 0.01)
	require.NoError(t, err)
	uh, err := matrix.ConjTranspose(u)
	require.NoError(t, err)
	prod, err := matrix.Mul(uh, u)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(top.Sites())
	require.NoError(t, err)
	d, err := matrix.MaxAbsDiff(prod, id)
	require.NoError(t, err)
	assert.Greater(t, d, 1e-6)
}

// One forward step followed by the inverse step from the same frozen H
// returns the original state.
func TestPropagator_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		top  lattice.Topology
		on   lattice.Onsite
		dt   float64
	}{
		{"nrssh gain/loss", MustNRSSH(t, 20, 0.2, 0.5, 0.9), lattice.Onsite{Gain: 0.9, Loss: 0.15, Saturation: 1}, 0.01},
		{"nrssh large dt", MustNRSSH(t, 10, 0.3, 0.5, 0.7), lattice.Onsite{Energy: 0.2, Gain: 0.6, Loss: 0.5, Saturation: 2}, 0.5},
		{"diamond gain/loss", MustDiamond(t, 15, 0.1, 0.4, 0.7, 0.3), lattice.Onsite{Gain: 0.6, Loss: 0.5, Saturation: 1}, 0.015},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			phi := randomState(tc.top.Sites(), 42)
			h, err := lattice.Assemble(tc.top, phi, tc.on)
			require.NoError(t, err)
			u, err := evolve.Propagator(h, tc.dt)
			require.NoError(t, err)
			back, err := evolve.InversePropagator(u)
			require.NoError(t, err)

			fwd, err := evolve.Step(u, phi)
			require.NoError(t, err)
			got, err := evolve.Step(back, fwd)
			require.NoError(t, err)
			assert.LessOrEqual(t, maxVecDiff(got, phi), 1e-10)
		})
	}
}

// Gain amplifies and loss damps the total intensity.
func TestPropagator_GainLossChangesNorm(t *testing.T) {
	t.Parallel()

	top := MustNRSSH(t, 5, 0.2, 0.5, 0.9)
	phi, err := evolve.Excitation(top.Sites(), 0)
	require.NoError(t, err)

	h, err := lattice.Assemble(top, phi, lattice.Onsite{Gain: 1})
	require.NoError(t, err)
	u, err := evolve.Propagator(h, 0.01)
	require.NoError(t, err)
	next, err := evolve.Step(u, phi)
	require.NoError(t, err)
	assert.Greater(t, evolve.TotalIntensity(next), 1.0)

	h, err = lattice.Assemble(top, phi, lattice.Onsite{Loss: 1})
	require.NoError(t, err)
	u, err = evolve.Propagator(h, 0.01)
	require.NoError(t, err)
	next, err = evolve.Step(u, phi)
	require.NoError(t, err)
	assert.Less(t, evolve.TotalIntensity(next), 1.0)
}

func TestPropagator_Degenerate(t *testing.T) {
	t.Parallel()

	// I + iHΔt/2 = 0 for H = 2i·I, Δt = 1.
	h, err := matrix.NewDiagonal([]complex128{2i, 2i})
	require.NoError(t, err)
	_, err = evolve.Propagator(h, 1)
	require.ErrorIs(t, err, evolve.ErrDegenerate)
	require.ErrorIs(t, err, matrix.ErrSingular)

	// I − iHΔt/2 = 0 for H = −2i·I: U = 0, its inverse is undefined.
	h, err = matrix.NewDiagonal([]complex128{-2i, -2i})
	require.NoError(t, err)
	u, err := evolve.Propagator(h, 1)
	require.NoError(t, err)
	_, err = evolve.InversePropagator(u)
	require.ErrorIs(t, err, evolve.ErrDegenerate)
}

func TestPropagator_BadInput(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err = evolve.Propagator(id, dt)
		require.ErrorIs(t, err, evolve.ErrBadTimeStep, "dt=%v", dt)
	}
	_, err = evolve.Propagator(nil, 0.1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = evolve.InversePropagator(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.NotErrorIs(t, err, evolve.ErrDegenerate)

	_, err = evolve.Step(id, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestStateHelpers(t *testing.T) {
	t.Parallel()

	phi, err := evolve.Excitation(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 1, 0}, phi)

	_, err = evolve.Excitation(4, 4)
	require.ErrorIs(t, err, evolve.ErrBadSite)
	_, err = evolve.Excitation(4, -1)
	require.ErrorIs(t, err, evolve.ErrBadSite)

	in := []complex128{3 + 4i, 1i, 0}
	assert.Equal(t, []float64{25, 1, 0}, evolve.Intensity(in))
	assert.Equal(t, 26.0, evolve.TotalIntensity(in))
}
