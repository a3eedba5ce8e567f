// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	realColor = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	imagColor = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
)

// Bands draws band energies against crystal momentum: bands[i] holds the
// energies at ks[i]. Real parts are circles; non-zero imaginary parts are
// drawn as a second series of crosses.
//
// Errors:
//   - ErrNoData for no momenta; ErrShape for len(ks) != len(bands).
func Bands(path string, ks []float64, bands [][]complex128, title string, opts ...Option) error {
	if len(ks) == 0 {
		return renderErrorf(opBands, ErrNoData)
	}
	if len(ks) != len(bands) {
		return renderErrorf(opBands, fmt.Errorf("%d momenta, %d band rows: %w", len(ks), len(bands), ErrShape))
	}
	var re, im plotter.XYs
	for i, row := range bands {
		for _, e := range row {
			re = append(re, plotter.XY{X: ks[i], Y: real(e)})
			if imag(e) != 0 {
				im = append(im, plotter.XY{X: ks[i], Y: imag(e)})
			}
		}
	}
	if err := spectrumPlot(path, title, "k", re, im, opts); err != nil {
		return renderErrorf(opBands, err)
	}

	return nil
}

// Eigenvalues draws a finite spectrum against eigenvalue index.
//
// Errors:
//   - ErrNoData for an empty spectrum.
func Eigenvalues(path string, vals []complex128, title string, opts ...Option) error {
	if len(vals) == 0 {
		return renderErrorf(opEigenvalues, ErrNoData)
	}
	var re, im plotter.XYs
	for i, e := range vals {
		re = append(re, plotter.XY{X: float64(i), Y: real(e)})
		if imag(e) != 0 {
			im = append(im, plotter.XY{X: float64(i), Y: imag(e)})
		}
	}
	if err := spectrumPlot(path, title, "index", re, im, opts); err != nil {
		return renderErrorf(opEigenvalues, err)
	}

	return nil
}

func spectrumPlot(path, title, xLabel string, re, im plotter.XYs, opts []Option) error {
	p := newPlot(title, xLabel, "E")
	for _, s := range []struct {
		name  string
		pts   plotter.XYs
		shape draw.GlyphDrawer
		color color.Color
	}{
		{"Re E", re, draw.CircleGlyph{}, realColor},
		{"Im E", im, draw.CrossGlyph{}, imagColor},
	} {
		if len(s.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(s.pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle = draw.GlyphStyle{Shape: s.shape, Color: s.color, Radius: vg.Points(2)}
		p.Add(sc)
		p.Legend.Add(s.name, sc)
	}
	p.Add(plotter.NewGrid())

	return savePNG(p, path, gatherOptions(opts...))
}
