// SPDX-License-Identifier: MIT

package evolve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Excitation returns a length-n state with φ_site = 1 and zeros elsewhere.
//
// Errors:
//   - ErrBadSite when site is outside [0, n).
func Excitation(n, site int) ([]complex128, error) {
	if site < 0 || site >= n {
		return nil, evolveErrorf(opExcitation, fmt.Errorf("site %d, N=%d: %w", site, n, ErrBadSite))
	}
	phi := make([]complex128, n)
	phi[site] = 1

	return phi, nil
}

// Intensity returns |φ_i|² per site.
func Intensity(phi []complex128) []float64 {
	out := make([]float64, len(phi))
	var re, im float64
	for i, v := range phi {
		re, im = real(v), imag(v)
		out[i] = re*re + im*im
	}

	return out
}

// TotalIntensity returns Σ|φ_i|². Non-Hermitian evolution does not conserve it.
func TotalIntensity(phi []complex128) float64 {
	return floats.Sum(Intensity(phi))
}
