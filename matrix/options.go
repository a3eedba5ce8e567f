// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by structural checks (IsHermitian).
	DefaultEpsilon = 1e-12

	// DefaultPivotTolerance is the magnitude at or below which an LU pivot is
	// treated as zero. Zero means only an exact zero (or NaN) pivot is singular.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles finite-value validation in Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotInvalid   = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved numeric policy consumed by kernels.
// Fields are unexported; build it with NewOptions(...Option).
type Options struct {
	eps            float64 // Hermitian/structural tolerance
	pivotTol       float64 // |pivot| <= pivotTol ⇒ ErrSingular
	validateNaNInf bool    // reject NaN/Inf in Set
}

// Epsilon reports the structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// PivotTolerance reports the singular-pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// WithEpsilon sets the tolerance for structural checks.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the magnitude at or below which a pivot is singular.
// A small positive value (e.g. 1e-14) turns near-singular systems into
// ErrSingular instead of results dominated by round-off.
// Panics if tol is negative, NaN or Inf.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithNoValidateNaNInf disables finite-only validation for matrices
// created by kernels that accept options.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves user setters on top of defaults.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults
// in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
