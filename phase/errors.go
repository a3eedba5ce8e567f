// SPDX-License-Identifier: MIT
// Package phase: sentinel error set.

package phase

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a gain or loss axis with no points.
	ErrEmptyGrid = errors.New("phase: parameter grid must have at least one point per axis")

	// ErrBadPoints indicates a non-finite parameter value or a point count below one.
	ErrBadPoints = errors.New("phase: invalid grid points")

	// ErrBadIndex indicates a (gain, loss) index outside the map.
	ErrBadIndex = errors.New("phase: grid index out of range")
)

// Operation tags for phaseErrorf.
const (
	opScan     = "Scan"
	opLinspace = "Linspace"
	opRegions  = "Regions"
)

// phaseErrorf wraps err with an operation tag, preserving sentinels via %w.
func phaseErrorf(tag string, err error) error {
	return fmt.Errorf("phase: %s: %w", tag, err)
}
