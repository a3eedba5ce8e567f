// SPDX-License-Identifier: MIT
// Package spectrum: sentinel error set.

package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConvergence indicates the eigensolver did not converge.
	ErrNoConvergence = errors.New("spectrum: eigendecomposition did not converge")

	// ErrBadIndex indicates an eigenvector index outside [0, N).
	ErrBadIndex = errors.New("spectrum: eigenvector index out of range")

	// ErrBadPoints indicates fewer than two momentum samples.
	ErrBadPoints = errors.New("spectrum: need at least two momentum points")
)

// Operation tags for spectrumErrorf.
const (
	opEigenvalues = "Eigenvalues"
	opIntensity   = "EigenvectorIntensity"
	opMomenta     = "Momenta"
	opBands       = "Bands"
)

func spectrumErrorf(tag string, err error) error {
	return fmt.Errorf("spectrum: %s: %w", tag, err)
}
