// SPDX-License-Identifier: MIT
package align_test

import (
	"testing"

	"github.com/katalvlaran/nhlattice/align"
	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrajectories_ExactReconstruction backtracks a Hermitian run, where
// U⁻¹ undoes every forward step, and expects a vanishing distance.
func TestTrajectories_ExactReconstruction(t *testing.T) {
	t.Parallel()
	top, err := lattice.NewNRSSH(3, lattice.NRSSHHopping{V: 0.5, U: 0.5, R: 0.9})
	require.NoError(t, err)
	on := lattice.Onsite{}
	opts := []evolve.Option{evolve.WithTimeStep(0.01), evolve.WithFrames(11)}

	forward, final, err := evolve.Record(top, on, 0.1, opts...)
	require.NoError(t, err)
	require.Len(t, forward, 11)
	tr, err := evolve.Backtrack(top, on, final, 0.1, opts...)
	require.NoError(t, err)

	rep, err := align.Trajectories(forward, tr.Frames, nil)
	require.NoError(t, err)
	assert.Equal(t, 11, rep.Forward)
	assert.Equal(t, 11, rep.Backward)
	assert.InDelta(t, 0, rep.Distance, 1e-9)
}

// TestTrajectories_ClipsForward checks that only forward frames inside the
// reconstructed span are aligned.
func TestTrajectories_ClipsForward(t *testing.T) {
	t.Parallel()
	forward := []evolve.Frame{
		{Time: 0, Intensity: []float64{1, 0}},
		{Time: 1, Intensity: []float64{0.8, 0.2}},
		{Time: 2, Intensity: []float64{0.6, 0.4}},
		{Time: 3, Intensity: []float64{0.5, 0.5}},
	}
	backward := []evolve.Frame{
		{Time: 3, Intensity: []float64{0.5, 0.5}},
		{Time: 2, Intensity: []float64{0.6, 0.4}},
	}
	opts := align.DefaultOptions()
	opts.ReturnPath = true

	rep, err := align.Trajectories(forward, backward, &opts)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Forward)
	assert.Equal(t, 0.0, rep.Distance)
	assert.Equal(t, []align.Coord{{0, 0}, {1, 1}}, rep.Path)
	assert.Equal(t, 0.0, rep.MeanCost)

	_, err = align.Trajectories(forward[:1], backward, nil)
	assert.ErrorIs(t, err, align.ErrEmptySequence)
	_, err = align.Trajectories(nil, backward, nil)
	assert.ErrorIs(t, err, align.ErrEmptySequence)
}
