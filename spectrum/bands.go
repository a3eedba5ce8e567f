// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/nhlattice/lattice"
	"gonum.org/v1/gonum/floats"
)

// Momenta returns n crystal momenta spanning [−π, π] inclusive.
//
// Errors:
//   - ErrBadPoints for n < 2.
func Momenta(n int) ([]float64, error) {
	if n < 2 {
		return nil, spectrumErrorf(opMomenta, fmt.Errorf("n=%d: %w", n, ErrBadPoints))
	}

	return floats.Span(make([]float64, n), -math.Pi, math.Pi), nil
}

// Bands evaluates the Bloch Hamiltonian of the infinite chain at each k and
// returns one sorted slice of band energies per momentum, offset by energy.
//
//   - NRSSH:   E(k) = ±√((V + R·e^{−ik})(U + R·e^{ik})), two bands.
//   - Diamond: E(k) = 0, ±√(|T1 + T3·e^{ik}|² + |T2 + T4·e^{ik}|²), three bands.
//
// Errors:
//   - lattice.ErrUnknownKind, lattice.ErrBadHopping for non-finite amplitudes.
func Bands(kind lattice.Kind, h lattice.Hopping, energy float64, ks []float64) ([][]complex128, error) {
	var band func(k float64) []complex128
	switch kind {
	case lattice.KindNRSSH:
		p := h.NRSSH
		if !finite(p.V, p.U, p.R) {
			return nil, spectrumErrorf(opBands, lattice.ErrBadHopping)
		}
		band = func(k float64) []complex128 {
			e := cmplx.Sqrt((complex(p.V, 0) + complex(p.R, 0)*cmplx.Exp(complex(0, -k))) *
				(complex(p.U, 0) + complex(p.R, 0)*cmplx.Exp(complex(0, k))))
			return []complex128{-e, e}
		}
	case lattice.KindDiamond:
		p := h.Diamond
		if !finite(p.T1, p.T2, p.T3, p.T4) {
			return nil, spectrumErrorf(opBands, lattice.ErrBadHopping)
		}
		band = func(k float64) []complex128 {
			phase := cmplx.Exp(complex(0, k))
			a := complex(p.T1, 0) + complex(p.T3, 0)*phase
			b := complex(p.T2, 0) + complex(p.T4, 0)*phase
			e := complex(math.Hypot(cmplx.Abs(a), cmplx.Abs(b)), 0)
			return []complex128{-e, 0, e}
		}
	default:
		return nil, spectrumErrorf(opBands, fmt.Errorf("%v: %w", kind, lattice.ErrUnknownKind))
	}

	out := make([][]complex128, len(ks))
	shift := complex(energy, 0)
	for i, k := range ks {
		row := band(k)
		for j := range row {
			row[j] += shift
		}
		slices.SortFunc(row, compareComplex)
		out[i] = row
	}

	return out, nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
