// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// newPlot returns a titled plot with the shared axis styling.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(8)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)
	p.X.Padding = vg.Points(6)
	p.Y.Padding = vg.Points(6)

	return p
}

// savePNG rasterizes p and writes it to path, creating parent directories.
func savePNG(p *plot.Plot, path string, o Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return renderErrorf(opSave, fmt.Errorf("create directory: %w", err))
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(o.width)*vg.Inch, vg.Length(o.height)*vg.Inch),
		vgimg.UseDPI(o.dpi),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return renderErrorf(opSave, fmt.Errorf("create png: %w", err))
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return renderErrorf(opSave, fmt.Errorf("write png: %w", err))
	}
	if err = bw.Flush(); err != nil {
		return renderErrorf(opSave, fmt.Errorf("write png: %w", err))
	}

	return f.Close()
}

// cool maps x ∈ [0, 1] onto the cyan→magenta ramp.
func cool(x float64) color.Color {
	switch {
	case x < 0:
		x = 0
	case x > 1:
		x = 1
	}

	return color.NRGBA{R: uint8(255 * x), G: uint8(255 * (1 - x)), B: 255, A: 255}
}
