// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
)

// Onsite holds the diagonal model parameters.
//   - Energy: real onsite energy added uniformly to every site.
//   - Gain: γ1, saturable gain amplitude on gain sites.
//   - Loss: γ2, constant loss on loss sites.
//   - Saturation: S in γ1/(1+S|φ|²); must be ≥ 0.
type Onsite struct {
	Energy     float64
	Gain       float64
	Loss       float64
	Saturation float64
}

// Validate rejects NaN/Inf fields and a negative saturation (which could
// zero the gain denominator).
//
// Errors:
//   - ErrBadOnsite.
func (o Onsite) Validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"energy", o.Energy},
		{"gain", o.Gain},
		{"loss", o.Loss},
		{"saturation", o.Saturation},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s=%v: %w", f.name, f.v, ErrBadOnsite)
		}
	}
	if o.Saturation < 0 {
		return fmt.Errorf("saturation=%v: %w", o.Saturation, ErrBadOnsite)
	}

	return nil
}

// Term returns the imaginary onsite contribution for a site with role r at
// local intensity |φ|². Neutral sites contribute 0.
func (o Onsite) Term(r Role, intensity float64) complex128 {
	var im float64
	if r.Has(RoleGain) {
		im += o.Gain / (1 + o.Saturation*intensity)
	}
	if r.Has(RoleLoss) {
		im -= o.Loss
	}

	return complex(0, im)
}

// Hermitian reports whether the onsite model adds no imaginary terms.
func (o Onsite) Hermitian() bool { return o.Gain == 0 && o.Loss == 0 }
