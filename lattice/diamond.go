// SPDX-License-Identifier: MIT

package lattice

// DiamondHopping holds the four symmetric Diamond amplitudes.
//   - T1: 3k   ↔ 3k+1 (A–B, intra-cell)
//   - T2: 3k   ↔ 3k+2 (A–C, intra-cell)
//   - T3: 3k+1 ↔ 3k+3 (B–next A, inter-cell)
//   - T4: 3k+2 ↔ 3k+3 (C–next A, inter-cell)
type DiamondHopping struct {
	T1, T2, T3, T4 float64
}

// Diamond is the three-site-per-cell chain closed by one terminal A-site,
// so N = 3·cells + 1. A-sites (i%3==0) carry saturable gain; B- and
// C-sites carry constant loss.
type Diamond struct {
	*chain
	hopping DiamondHopping
}

var _ Topology = (*Diamond)(nil)

// NewDiamond builds a Diamond chain.
//
// Implementation:
//   - Stage 1: Validate cells and amplitudes.
//   - Stage 2: For each cell k write the four symmetric bond pairs.
//     Bonds whose far end lies beyond N−1 are never written.
//
// Errors:
//   - ErrBadCells, ErrBadHopping.
//
// Complexity:
//   - Time O(N²) (zeroed matrix), Space O(N²).
func NewDiamond(cells int, h DiamondHopping) (*Diamond, error) {
	if !finite(h.T1, h.T2, h.T3, h.T4) {
		return nil, latticeErrorf(opDiamond, ErrBadHopping)
	}
	c, err := newChain(KindDiamond, cells)
	if err != nil {
		return nil, latticeErrorf(opDiamond, err)
	}
	var a int
	for k := 0; k < cells; k++ {
		a = 3 * k
		for _, b := range [...]struct {
			i, j int
			amp  float64
		}{
			{a, a + 1, h.T1},
			{a, a + 2, h.T2},
			{a + 1, a + 3, h.T3},
			{a + 2, a + 3, h.T4},
		} {
			if err = c.link(b.i, b.j, b.amp, b.amp); err != nil {
				return nil, latticeErrorf(opDiamond, err)
			}
		}
	}

	return &Diamond{chain: c, hopping: h}, nil
}

// Amplitudes returns the construction amplitudes.
func (t *Diamond) Amplitudes() DiamondHopping { return t.hopping }

// Role reports RoleGain on A-sites and RoleLoss on B/C-sites.
func (t *Diamond) Role(i int) Role {
	switch {
	case i < 0 || i >= t.n:
		return RoleNeutral
	case i%3 == 0:
		return RoleGain
	default:
		return RoleLoss
	}
}
