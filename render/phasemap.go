// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/katalvlaran/nhlattice/phase"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	notConvergedColor = color.Gray{Y: 200}
	undefinedColor    = color.Black
)

// PhaseMap draws every grid point as a square in the (gain, loss) plane.
// Converged points take one of phase.DefaultColors palette colours by
// convergence time; the rest are grey, undefined points are crossed out.
// The γ1=γ2 and γ1=(1+S)γ2 reference lines are overlaid.
//
// Errors:
//   - ErrNoData for a nil or empty map.
func PhaseMap(path string, m *phase.Map, title string, opts ...Option) error {
	if m == nil {
		return renderErrorf(opPhaseMap, ErrNoData)
	}
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return renderErrorf(opPhaseMap, ErrNoData)
	}

	pal := moreland.Kindlmann().Palette(phase.DefaultColors).Colors()
	pts := make(plotter.XYs, 0, rows*cols)
	styles := make([]draw.GlyphStyle, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			pts = append(pts, plotter.XY{X: m.Gains[i], Y: m.Losses[j]})
			gs := draw.GlyphStyle{Shape: draw.BoxGlyph{}, Radius: vg.Points(4), Color: notConvergedColor}
			if idx, ok := m.ColorIndex(i, j, phase.DefaultColors); ok {
				gs.Color = pal[idx]
			} else if m.Status[i][j] == phase.StatusUndefined {
				gs.Shape, gs.Color = draw.CrossGlyph{}, undefinedColor
			}
			styles = append(styles, gs)
		}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return renderErrorf(opPhaseMap, err)
	}
	sc.GlyphStyleFunc = func(k int) draw.GlyphStyle { return styles[k] }

	p := newPlot(title, "gain γ1", "loss γ2")
	p.Add(sc)
	for _, ref := range []struct {
		name string
		line phase.Line
	}{
		{"γ1 = γ2", phase.EqualGainLossLine()},
		{"γ1 = (1+S)γ2", phase.SaturationLine(m.Saturation)},
	} {
		l, err := referenceLine(ref.line)
		if err != nil {
			return renderErrorf(opPhaseMap, err)
		}
		p.Add(l)
		p.Legend.Add(ref.name, l)
	}
	p.Add(plotter.NewGrid())
	p.X.Min, p.Y.Min = 0, 0
	p.Legend.Top = true

	return savePNG(p, path, gatherOptions(opts...))
}

func referenceLine(ln phase.Line) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: ln.X0, Y: ln.Y0}, {X: ln.X1, Y: ln.Y1}})
	if err != nil {
		return nil, err
	}
	l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	l.LineStyle.Width = vg.Points(1.5)

	return l, nil
}
