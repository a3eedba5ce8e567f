// SPDX-License-Identifier: MIT
package phase_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/phase"
	"github.com/stretchr/testify/require"
)

// nrsshParams is a small non-reciprocal chain used across the sweep tests.
func nrsshParams(cells int) phase.Params {
	return phase.Params{
		Kind:       lattice.KindNRSSH,
		Cells:      cells,
		Hopping:    lattice.Hopping{NRSSH: lattice.NRSSHHopping{V: 0.3, U: 0.5, R: 0.7}},
		Saturation: 1,
	}
}

// MustUnitGrid returns n points on [0, 1] or fails the test.
func MustUnitGrid(tb testing.TB, n int) []float64 {
	tb.Helper()
	g, err := phase.UnitGrid(n)
	require.NoError(tb, err)

	return g
}

// requireMapInvariants checks shape and per-point consistency of m.
func requireMapInvariants(tb testing.TB, m *phase.Map, rows, cols int) {
	tb.Helper()
	r, c := m.Shape()
	require.Equal(tb, rows, r)
	require.Equal(tb, cols, c)
	require.Len(tb, m.Times, rows)
	for i := 0; i < rows; i++ {
		require.Len(tb, m.Times[i], cols)
		require.Len(tb, m.Converged[i], cols)
		require.Len(tb, m.Status[i], cols)
		for j := 0; j < cols; j++ {
			st := m.Status[i][j]
			require.Equal(tb, st == phase.StatusConverged, m.Converged[i][j], "point (%d,%d)", i, j)
			if st == phase.StatusUndefined {
				require.True(tb, math.IsNaN(m.Times[i][j]), "point (%d,%d)", i, j)
				continue
			}
			require.GreaterOrEqual(tb, m.Times[i][j], 0.0)
			require.LessOrEqual(tb, m.Times[i][j], m.MaxTime)
		}
	}
}
