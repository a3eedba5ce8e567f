// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ i, j int }

// bondMap indexes bonds by (From,To) and fails on duplicates.
func bondMap(t *testing.T, bonds []lattice.Bond) map[pair]complex128 {
	t.Helper()
	out := make(map[pair]complex128, len(bonds))
	for _, b := range bonds {
		key := pair{b.From, b.To}
		_, dup := out[key]
		require.False(t, dup, "duplicate bond %v", key)
		out[key] = b.Amplitude
	}

	return out
}

func TestNewNRSSH_Pattern(t *testing.T) {
	t.Parallel()

	top, err := lattice.NewNRSSH(3, lattice.NRSSHHopping{V: 0.2, U: 0.5, R: 0.9})
	require.NoError(t, err)
	require.Equal(t, 6, top.Sites())
	require.Equal(t, 3, top.Cells())
	require.Equal(t, lattice.KindNRSSH, top.Kind())

	want := map[pair]complex128{
		{0, 1}: 0.2, {1, 0}: 0.5,
		{2, 3}: 0.2, {3, 2}: 0.5,
		{4, 5}: 0.2, {5, 4}: 0.5,
		{1, 2}: 0.9, {2, 1}: 0.9,
		{3, 4}: 0.9, {4, 3}: 0.9,
	}
	assert.Equal(t, want, bondMap(t, top.Bonds()))

	h := top.Hopping()
	for _, d := range h.Diagonal() {
		assert.Equal(t, complex128(0), d)
	}
	for i := 0; i < top.Sites(); i++ {
		assert.Equal(t, lattice.RoleGain|lattice.RoleLoss, top.Role(i))
	}
	assert.Equal(t, lattice.RoleNeutral, top.Role(6))
}

// Diamond with 33 cells: N = 100, exactly the four bond families, symmetric and real.
func TestNewDiamond_Cells33(t *testing.T) {
	t.Parallel()

	hop := lattice.DiamondHopping{T1: 0.2, T2: 0.5, T3: 0.9, T4: 0.4}
	top, err := lattice.NewDiamond(33, hop)
	require.NoError(t, err)
	require.Equal(t, 100, top.Sites())

	want := make(map[pair]complex128)
	for k := 0; k < 33; k++ {
		a := 3 * k
		for _, b := range []struct {
			i, j int
			amp  float64
		}{
			{a, a + 1, hop.T1}, {a, a + 2, hop.T2},
			{a + 1, a + 3, hop.T3}, {a + 2, a + 3, hop.T4},
		} {
			want[pair{b.i, b.j}] = complex(b.amp, 0)
			want[pair{b.j, b.i}] = complex(b.amp, 0)
		}
	}
	got := bondMap(t, top.Bonds())
	assert.Equal(t, want, got)
	assert.Len(t, got, 33*4*2)

	h := top.Hopping()
	ok, err := matrix.IsHermitian(h, matrix.WithEpsilon(0))
	require.NoError(t, err)
	assert.True(t, ok)
	for _, b := range top.Bonds() {
		assert.Zero(t, imag(b.Amplitude))
		assert.Less(t, b.From, 100)
		assert.Less(t, b.To, 100)
	}

	assert.Equal(t, lattice.RoleGain, top.Role(0))
	assert.Equal(t, lattice.RoleLoss, top.Role(1))
	assert.Equal(t, lattice.RoleLoss, top.Role(2))
	assert.Equal(t, lattice.RoleGain, top.Role(99))
}

func TestTopology_HoppingIsCopy(t *testing.T) {
	t.Parallel()

	top, err := lattice.NewNRSSH(2, lattice.NRSSHHopping{V: 1, U: 1, R: 1})
	require.NoError(t, err)
	h := top.Hopping()
	require.NoError(t, h.Set(0, 1, 42))

	again := top.Hopping()
	v, err := again.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v)
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	_, err := lattice.NewNRSSH(0, lattice.NRSSHHopping{})
	require.ErrorIs(t, err, lattice.ErrBadCells)
	_, err = lattice.NewDiamond(-2, lattice.DiamondHopping{})
	require.ErrorIs(t, err, lattice.ErrBadCells)
	_, err = lattice.NewNRSSH(3, lattice.NRSSHHopping{V: math.NaN()})
	require.ErrorIs(t, err, lattice.ErrBadHopping)
	_, err = lattice.NewDiamond(3, lattice.DiamondHopping{T4: math.Inf(1)})
	require.ErrorIs(t, err, lattice.ErrBadHopping)

	top, err := lattice.New(lattice.Kind(9), 3, lattice.Hopping{})
	require.ErrorIs(t, err, lattice.ErrUnknownKind)
	assert.Nil(t, top)

	top, err = lattice.New(lattice.KindNRSSH, 0, lattice.Hopping{})
	require.ErrorIs(t, err, lattice.ErrBadCells)
	assert.Nil(t, top, "failed build must be a nil interface")

	top, err = lattice.New(lattice.KindDiamond, 2, lattice.Hopping{Diamond: lattice.DiamondHopping{T1: 1}})
	require.NoError(t, err)
	assert.Equal(t, 7, top.Sites())
}

func TestValidateSites(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		kind lattice.Kind
		n    int
		want error
	}{
		{"nrssh even", lattice.KindNRSSH, 100, nil},
		{"nrssh odd", lattice.KindNRSSH, 101, lattice.ErrSiteCount},
		{"nrssh zero", lattice.KindNRSSH, 0, lattice.ErrSiteCount},
		{"diamond 1 mod 3", lattice.KindDiamond, 100, nil},
		{"diamond 0 mod 3", lattice.KindDiamond, 99, lattice.ErrSiteCount},
		{"diamond 2 mod 3", lattice.KindDiamond, 101, lattice.ErrSiteCount},
		{"diamond lone site", lattice.KindDiamond, 1, lattice.ErrSiteCount},
		{"unknown", lattice.Kind(0), 4, lattice.ErrUnknownKind},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := lattice.ValidateSites(tc.kind, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := lattice.ParseKind(" NRSSH ")
	require.NoError(t, err)
	assert.Equal(t, lattice.KindNRSSH, k)
	assert.Equal(t, "nrssh", k.String())

	k, err = lattice.ParseKind("Diamond")
	require.NoError(t, err)
	assert.Equal(t, lattice.KindDiamond, k)

	_, err = lattice.ParseKind("kagome")
	require.ErrorIs(t, err, lattice.ErrUnknownKind)

	n, err := lattice.SitesFor(lattice.KindDiamond, 33)
	require.NoError(t, err)
	assert.Equal(t, 100, n)
}

func TestRole_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gain|loss", (lattice.RoleGain | lattice.RoleLoss).String())
	assert.Equal(t, "neutral", lattice.RoleNeutral.String())
	assert.True(t, (lattice.RoleGain | lattice.RoleLoss).Has(lattice.RoleLoss))
	assert.False(t, lattice.RoleGain.Has(lattice.RoleLoss))
	assert.False(t, lattice.RoleGain.Has(lattice.RoleNeutral))
}
