// SPDX-License-Identifier: MIT
package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/phase"
	"github.com/katalvlaran/nhlattice/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// requirePNG asserts that path holds a PNG image.
func requirePNG(tb testing.TB, path string) {
	tb.Helper()
	data, err := os.ReadFile(path)
	require.NoError(tb, err)
	require.True(tb, bytes.HasPrefix(data, pngMagic), "not a PNG: %s", path)
}

// small keeps test canvases cheap.
var small = []render.Option{render.WithSize(3, 2), render.WithDPI(40)}

func TestFrames(t *testing.T) {
	t.Parallel()
	frames := []evolve.Frame{
		{Time: 0, Intensity: []float64{1, 0, 0, 0}},
		{Time: 0.5, Intensity: []float64{0.5, 0.3, 0.1, 0.1}},
		{Time: 1, Intensity: []float64{0.2, 0.3, 0.3, 0.2}},
	}
	path := filepath.Join(t.TempDir(), "nested", "frames.png")
	require.NoError(t, render.Frames(path, frames, "evolution", small...))
	requirePNG(t, path)

	err := render.Frames(path, nil, "", small...)
	require.ErrorIs(t, err, render.ErrNoData)

	frames[1].Intensity = frames[1].Intensity[:2]
	err = render.Frames(path, frames, "", small...)
	require.ErrorIs(t, err, render.ErrShape)
}

func TestPhaseMap(t *testing.T) {
	t.Parallel()
	c, n, u := phase.StatusConverged, phase.StatusNotConverged, phase.StatusUndefined
	m := &phase.Map{
		Gains:      []float64{0, 1},
		Losses:     []float64{0, 1},
		Times:      [][]float64{{0.5, 10}, {math.NaN(), 3}},
		Converged:  [][]bool{{true, false}, {false, true}},
		Status:     [][]phase.Status{{c, n}, {u, c}},
		MaxTime:    10,
		Saturation: 1,
	}
	path := filepath.Join(t.TempDir(), "phase.png")
	require.NoError(t, render.PhaseMap(path, m, "phase diagram", small...))
	requirePNG(t, path)

	require.ErrorIs(t, render.PhaseMap(path, nil, "", small...), render.ErrNoData)
	require.ErrorIs(t, render.PhaseMap(path, &phase.Map{}, "", small...), render.ErrNoData)
}

func TestSpectrumPlots(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	bands := filepath.Join(dir, "bands.png")
	require.NoError(t, render.Bands(bands, []float64{-1, 0, 1},
		[][]complex128{{-1, 1}, {-2, 2}, {complex(-1, 0.2), complex(1, -0.2)}}, "bands", small...))
	requirePNG(t, bands)

	eig := filepath.Join(dir, "eig.png")
	require.NoError(t, render.Eigenvalues(eig, []complex128{-1, 0, 1}, "spectrum", small...))
	requirePNG(t, eig)

	require.ErrorIs(t, render.Bands(bands, nil, nil, "", small...), render.ErrNoData)
	require.ErrorIs(t, render.Bands(bands, []float64{0}, nil, "", small...), render.ErrShape)
	require.ErrorIs(t, render.Eigenvalues(eig, nil, "", small...), render.ErrNoData)
}

func TestOptionsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { render.WithSize(0, 1) })
	assert.Panics(t, func() { render.WithDPI(0) })
	assert.NotPanics(t, func() { render.WithSize(1, 1) })
}
