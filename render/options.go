// SPDX-License-Identifier: MIT

package render

import "fmt"

const (
	// DefaultWidth and DefaultHeight are the canvas size in inches.
	DefaultWidth  = 8.0
	DefaultHeight = 6.0

	// DefaultDPI is the raster resolution of written PNGs.
	DefaultDPI = 150
)

// Option mutates Options. Later options win.
type Option func(*Options)

// Options is the resolved canvas configuration.
type Options struct {
	width, height float64
	dpi           int
}

// WithSize sets the canvas size in inches.
// Panics if either side is not positive (programmer error).
func WithSize(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: WithSize(%v, %v): sides must be > 0", width, height))
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// WithDPI sets the raster resolution.
// Panics if dpi < 1 (programmer error).
func WithDPI(dpi int) Option {
	if dpi < 1 {
		panic(fmt.Sprintf("render: WithDPI(%d): dpi must be >= 1", dpi))
	}

	return func(o *Options) { o.dpi = dpi }
}

func gatherOptions(user ...Option) Options {
	o := Options{width: DefaultWidth, height: DefaultHeight, dpi: DefaultDPI}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
