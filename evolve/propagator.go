// SPDX-License-Identifier: MIT

package evolve

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/matrix"
)

// Propagator returns the second-order (Cayley / Crank–Nicolson) step operator
//
//	U = (I − iHΔt/2)(I + iHΔt/2)⁻¹.
//
// U is unitary exactly when H is Hermitian; gain/loss terms make it amplify
// or damp the total intensity.
//
// Implementation:
//   - Stage 1: A = I − iΔt/2·H and B = I + iΔt/2·H in one pass each.
//   - Stage 2: B⁻¹ by partially pivoted LU.
//   - Stage 3: U = A·B⁻¹, checked for finite entries.
//
// Errors:
//   - ErrBadTimeStep.
//   - ErrDegenerate wrapping matrix.ErrSingular or matrix.ErrNaNInf.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare for malformed H.
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Propagator(h *matrix.Dense, dt float64) (*matrix.Dense, error) {
	if !positive(dt) {
		return nil, evolveErrorf(opPropagator, fmt.Errorf("dt=%v: %w", dt, ErrBadTimeStep))
	}
	half := complex(0, dt/2)
	a, err := matrix.ShiftScale(h, 1, -half)
	if err != nil {
		return nil, evolveErrorf(opPropagator, err)
	}
	b, err := matrix.ShiftScale(h, 1, half)
	if err != nil {
		return nil, evolveErrorf(opPropagator, err)
	}
	bInv, err := matrix.Inverse(b)
	if err != nil {
		return nil, degenerate(opPropagator, err)
	}
	u, err := matrix.Mul(a, bInv)
	if err != nil {
		return nil, evolveErrorf(opPropagator, err)
	}
	if err = matrix.ValidateFinite(u); err != nil {
		return nil, degenerate(opPropagator, err)
	}

	return u, nil
}

// InversePropagator returns U⁻¹, the exact one-step backward map for the
// Hamiltonian that produced U.
//
// Errors:
//   - ErrDegenerate wrapping matrix.ErrSingular or matrix.ErrNaNInf.
func InversePropagator(u *matrix.Dense) (*matrix.Dense, error) {
	inv, err := matrix.Inverse(u)
	if err != nil {
		if err2 := matrix.ValidateSquare(u); err2 != nil {
			return nil, evolveErrorf(opInverse, err2)
		}
		return nil, degenerate(opInverse, err)
	}

	return inv, nil
}

// Step returns U·φ as a new vector.
//
// Errors:
//   - matrix.ErrDimensionMismatch for len(φ) != N.
//   - ErrDegenerate when the product is not finite.
func Step(u *matrix.Dense, phi []complex128) ([]complex128, error) {
	next, err := matrix.MatVec(u, phi)
	if err != nil {
		return nil, evolveErrorf(opStep, err)
	}
	if err = matrix.ValidateFiniteVec(next); err != nil {
		return nil, degenerate(opStep, err)
	}

	return next, nil
}
