// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/matrix"
)

// Hopping bundles the amplitudes of every variant for the generic constructor.
// Only the block matching the requested Kind is read.
type Hopping struct {
	NRSSH   NRSSHHopping
	Diamond DiamondHopping
}

// New builds the topology named by kind.
//
// Errors:
//   - ErrUnknownKind, plus the errors of NewNRSSH / NewDiamond.
func New(kind Kind, cells int, h Hopping) (Topology, error) {
	// Concrete constructors return typed pointers; keep a failed build a nil interface.
	switch kind {
	case KindNRSSH:
		t, err := NewNRSSH(cells, h.NRSSH)
		if err != nil {
			return nil, err
		}
		return t, nil
	case KindDiamond:
		t, err := NewDiamond(cells, h.Diamond)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, latticeErrorf(opNew, fmt.Errorf("%v: %w", kind, ErrUnknownKind))
	}
}

// Assemble returns the instantaneous Hamiltonian for state phi.
//
// Implementation:
//   - Stage 1: Validate onsite parameters and len(phi) == N.
//   - Stage 2: Copy the base hopping matrix.
//   - Stage 3: Add Energy to every diagonal entry; when phi != nil also add
//     the role-dependent gain/loss term at |φ_i|².
//
// A nil phi yields the linear (static) Hamiltonian: gain and loss are ignored.
// The returned matrix is fresh on every call.
//
// Errors:
//   - ErrBadOnsite, ErrStateLength, matrix.ErrNaNInf (non-finite phi).
//
// Complexity:
//   - Time O(N²) for the copy, Space O(N²).
func Assemble(top Topology, phi []complex128, on Onsite) (*matrix.Dense, error) {
	if top == nil {
		return nil, latticeErrorf(opAssemble, matrix.ErrNilMatrix)
	}
	if err := on.Validate(); err != nil {
		return nil, latticeErrorf(opAssemble, err)
	}
	n := top.Sites()
	if phi != nil && len(phi) != n {
		return nil, latticeErrorf(opAssemble, fmt.Errorf("len=%d, N=%d: %w", len(phi), n, ErrStateLength))
	}

	h := top.Hopping()
	diag := make([]complex128, n)
	var re, im float64
	for i := range diag {
		diag[i] = complex(on.Energy, 0)
		if phi != nil {
			re, im = real(phi[i]), imag(phi[i])
			diag[i] += on.Term(top.Role(i), re*re+im*im)
		}
	}
	if err := h.AddDiagonal(diag); err != nil {
		return nil, latticeErrorf(opAssemble, err)
	}

	return h, nil
}

// AssembleStatic is Assemble(top, nil, Onsite{Energy: energy}): the linear
// Hamiltonian used for static spectra.
func AssembleStatic(top Topology, energy float64) (*matrix.Dense, error) {
	return Assemble(top, nil, Onsite{Energy: energy})
}
