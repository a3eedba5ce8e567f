// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/nhlattice/matrix"
)

// Role classifies a site for the onsite model. Roles combine as a bitmask:
// NRSSH sites are RoleGain|RoleLoss.
type Role uint8

const (
	// RoleNeutral sites get only the real onsite energy.
	RoleNeutral Role = 0

	// RoleGain sites get the saturable gain +i·γ1/(1+S|φ|²).
	RoleGain Role = 1

	// RoleLoss sites get the constant loss −i·γ2.
	RoleLoss Role = 2
)

// Has reports whether r includes every bit of q.
func (r Role) Has(q Role) bool { return r&q == q && q != 0 }

// String renders the role for logs ("neutral", "gain", "loss", "gain|loss").
func (r Role) String() string {
	switch r {
	case RoleNeutral:
		return "neutral"
	case RoleGain:
		return "gain"
	case RoleLoss:
		return "loss"
	case RoleGain | RoleLoss:
		return "gain|loss"
	default:
		return "invalid"
	}
}

// Bond is one directed non-zero hopping entry H[From,To].
type Bond struct {
	From, To  int
	Amplitude complex128
}

// Topology is the polymorphic lattice description shared by the evolution
// engine. Implementations are immutable after construction.
type Topology interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Cells returns the unit-cell count.
	Cells() int
	// Sites returns N, the matrix dimension.
	Sites() int
	// Hopping returns a copy of the N×N hopping matrix (zero diagonal).
	Hopping() *matrix.Dense
	// Role classifies site i; out-of-range indices are RoleNeutral.
	Role(i int) Role
	// Bonds lists the non-zero hopping entries in row-major order.
	Bonds() []Bond
}

// chain holds the state shared by both variants.
type chain struct {
	kind  Kind
	cells int
	n     int
	hop   *matrix.Dense
}

func (c *chain) Kind() Kind { return c.kind }
func (c *chain) Cells() int { return c.cells }
func (c *chain) Sites() int { return c.n }
func (c *chain) Hopping() *matrix.Dense { return c.hop.Clone() }

// Bonds scans the base matrix row by row. Complexity: O(N²).
func (c *chain) Bonds() []Bond {
	var out []Bond
	for i := 0; i < c.n; i++ {
		row, err := c.hop.Row(i)
		if err != nil {
			return out
		}
		for j, v := range row {
			if v != 0 {
				out = append(out, Bond{From: i, To: j, Amplitude: v})
			}
		}
	}

	return out
}

// newChain allocates the zero N×N base matrix after validating the site count.
func newChain(kind Kind, cells int) (*chain, error) {
	n, err := SitesFor(kind, cells)
	if err != nil {
		return nil, err
	}
	if err = ValidateSites(kind, n); err != nil {
		return nil, err
	}
	hop, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	return &chain{kind: kind, cells: cells, n: n, hop: hop}, nil
}

// link writes a bond pair H[i,j]=fwd, H[j,i]=bwd, skipping indices past N−1.
func (c *chain) link(i, j int, fwd, bwd float64) error {
	if i >= c.n || j >= c.n {
		return nil
	}
	if err := c.hop.Set(i, j, complex(fwd, 0)); err != nil {
		return err
	}

	return c.hop.Set(j, i, complex(bwd, 0))
}

// finite reports whether every amplitude is a finite float.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
