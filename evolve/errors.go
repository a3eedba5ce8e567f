// SPDX-License-Identifier: MIT
// Package evolve: sentinel error set.

package evolve

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerate signals that the propagator (or its inverse) is undefined:
	// I + iHΔt/2 (or U) is singular, or a product became non-finite.
	// The underlying matrix sentinel stays reachable through errors.Is.
	ErrDegenerate = errors.New("evolve: degenerate propagator")

	// ErrBadTimeStep indicates Δt <= 0, NaN or Inf.
	ErrBadTimeStep = errors.New("evolve: time step must be finite and > 0")

	// ErrBadTolerance indicates a tolerance <= 0, NaN or Inf.
	ErrBadTolerance = errors.New("evolve: tolerance must be finite and > 0")

	// ErrBadMaxTime indicates a maximum time <= 0, NaN or Inf.
	ErrBadMaxTime = errors.New("evolve: max time must be finite and > 0")

	// ErrBadFrames indicates a frame budget below one.
	ErrBadFrames = errors.New("evolve: frame count must be >= 1")

	// ErrBadSite indicates an excitation site outside [0, N).
	ErrBadSite = errors.New("evolve: excitation site out of range")
)

// Operation tags for evolveErrorf.
const (
	opPropagator = "Propagator"
	opInverse    = "InversePropagator"
	opStep       = "Step"
	opRun        = "Run"
	opRecord     = "Record"
	opBacktrack  = "Backtrack"
	opExcitation = "Excitation"
)

// evolveErrorf wraps err with an operation tag, preserving sentinels via %w.
func evolveErrorf(tag string, err error) error {
	return fmt.Errorf("evolve: %s: %w", tag, err)
}

// degenerate joins ErrDegenerate with the matrix-level cause.
func degenerate(tag string, cause error) error {
	return evolveErrorf(tag, fmt.Errorf("%w: %w", ErrDegenerate, cause))
}
