// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
// Constructors and Assemble return these sentinels, optionally wrapped with
// an operation tag via latticeErrorf; callers match with errors.Is.

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCells indicates a unit-cell count below one.
	ErrBadCells = errors.New("lattice: cell count must be >= 1")

	// ErrSiteCount indicates a site count that violates the topology's
	// modulus constraint (NRSSH: even; Diamond: N ≡ 1 mod 3).
	ErrSiteCount = errors.New("lattice: site count inconsistent with topology")

	// ErrUnknownKind indicates an unrecognized topology variant.
	ErrUnknownKind = errors.New("lattice: unknown topology kind")

	// ErrBadHopping indicates a NaN or ±Inf hopping amplitude.
	ErrBadHopping = errors.New("lattice: hopping amplitude must be finite")

	// ErrBadOnsite indicates non-finite onsite parameters or a negative saturation.
	ErrBadOnsite = errors.New("lattice: invalid onsite parameters")

	// ErrStateLength indicates a wavefunction whose length differs from the site count.
	ErrStateLength = errors.New("lattice: wavefunction length != site count")
)

// Operation tags for latticeErrorf.
const (
	opNew      = "New"
	opNRSSH    = "NewNRSSH"
	opDiamond  = "NewDiamond"
	opAssemble = "Assemble"
)

// latticeErrorf wraps err with an operation tag, preserving the sentinel via %w.
func latticeErrorf(tag string, err error) error {
	return fmt.Errorf("lattice: %s: %w", tag, err)
}
