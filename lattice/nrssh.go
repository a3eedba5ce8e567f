// SPDX-License-Identifier: MIT

package lattice

// NRSSHHopping holds the NRSSH amplitudes.
//   - V: intra-cell forward (even → odd site, H[2k,2k+1]).
//   - U: intra-cell backward (odd → even site, H[2k+1,2k]).
//   - R: reciprocal inter-cell (H[2k+1,2k+2] = H[2k+2,2k+1]).
type NRSSHHopping struct {
	V, U, R float64
}

// NRSSH is the two-site-per-cell non-reciprocal SSH chain.
// Every site is both gain- and loss-bearing.
type NRSSH struct {
	*chain
	hopping NRSSHHopping
}

var _ Topology = (*NRSSH)(nil)

// NewNRSSH builds an NRSSH chain with N = 2·cells sites.
//
// Implementation:
//   - Stage 1: Validate cells and amplitudes.
//   - Stage 2: For even i write H[i,i+1]=V, H[i+1,i]=U.
//   - Stage 3: For odd i < N−1 write H[i,i+1]=H[i+1,i]=R. The last site has
//     no inter-cell partner; the chain does not wrap.
//
// Errors:
//   - ErrBadCells, ErrBadHopping.
//
// Complexity:
//   - Time O(N²) (zeroed matrix), Space O(N²).
func NewNRSSH(cells int, h NRSSHHopping) (*NRSSH, error) {
	if !finite(h.V, h.U, h.R) {
		return nil, latticeErrorf(opNRSSH, ErrBadHopping)
	}
	c, err := newChain(KindNRSSH, cells)
	if err != nil {
		return nil, latticeErrorf(opNRSSH, err)
	}
	for i := 0; i < c.n-1; i += 2 {
		if err = c.link(i, i+1, h.V, h.U); err != nil {
			return nil, latticeErrorf(opNRSSH, err)
		}
	}
	for i := 1; i < c.n-1; i += 2 {
		if err = c.link(i, i+1, h.R, h.R); err != nil {
			return nil, latticeErrorf(opNRSSH, err)
		}
	}

	return &NRSSH{chain: c, hopping: h}, nil
}

// Amplitudes returns the construction amplitudes.
func (t *NRSSH) Amplitudes() NRSSHHopping { return t.hopping }

// Role reports RoleGain|RoleLoss for every in-range site.
func (t *NRSSH) Role(i int) Role {
	if i < 0 || i >= t.n {
		return RoleNeutral
	}

	return RoleGain | RoleLoss
}
