// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/evolve"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Frames draws one intensity-vs-site line per frame, coloured along the
// cyan→magenta ramp in slice order, and labels the first and last frame.
// Frames may be chronological (Record) or reversed (Backtrack).
//
// Errors:
//   - ErrNoData for no frames or empty intensities.
//   - ErrShape when frames disagree on the site count.
func Frames(path string, frames []evolve.Frame, title string, opts ...Option) error {
	if len(frames) == 0 || len(frames[0].Intensity) == 0 {
		return renderErrorf(opFrames, ErrNoData)
	}
	sites := len(frames[0].Intensity)

	p := newPlot(title, "site", "|ψ|²")
	last := len(frames) - 1
	for k, fr := range frames {
		if len(fr.Intensity) != sites {
			return renderErrorf(opFrames, fmt.Errorf("frame %d has %d sites, want %d: %w", k, len(fr.Intensity), sites, ErrShape))
		}
		pts := make(plotter.XYs, sites)
		for i, v := range fr.Intensity {
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return renderErrorf(opFrames, err)
		}
		x := 0.0
		if last > 0 {
			x = float64(k) / float64(last)
		}
		line.LineStyle.Color = cool(x)
		line.LineStyle.Width = vg.Points(1.2)
		p.Add(line)

		switch k {
		case 0:
			p.Legend.Add(fmt.Sprintf("start t=%.3g", fr.Time), line)
		case last:
			p.Legend.Add(fmt.Sprintf("finish t=%.3g", fr.Time), line)
		}
	}
	p.Legend.Top = true

	return savePNG(p, path, gatherOptions(opts...))
}
