// SPDX-License-Identifier: MIT

package phase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields [lo].
//
// Errors:
//   - ErrBadPoints for n < 1 or non-finite bounds.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, phaseErrorf(opLinspace, fmt.Errorf("n=%d: %w", n, ErrBadPoints))
	}
	if !finite(lo) || !finite(hi) {
		return nil, phaseErrorf(opLinspace, fmt.Errorf("[%v, %v]: %w", lo, hi, ErrBadPoints))
	}
	if n == 1 {
		return []float64{lo}, nil
	}

	return floats.Span(make([]float64, n), lo, hi), nil
}

// UnitGrid returns n points spanning [0, 1], the usual gain/loss axis.
func UnitGrid(n int) ([]float64, error) { return Linspace(0, 1, n) }

// Line is a straight reference line from (X0, Y0) to (X1, Y1) in the
// (gain, loss) plane.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// EqualGainLossLine is γ1 = γ2 over the unit square.
func EqualGainLossLine() Line { return Line{X0: 0, Y0: 0, X1: 1, Y1: 1} }

// SaturationLine is γ1 = (1+S)γ2 over gains in [0, 1].
func SaturationLine(saturation float64) Line {
	return Line{X0: 0, Y0: 0, X1: 1, Y1: 1 / (1 + saturation)}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
