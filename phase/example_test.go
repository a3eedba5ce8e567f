// SPDX-License-Identifier: MIT
package phase_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/phase"
)

// ExampleScan sweeps a single Hermitian point: with no gain or loss and
// reciprocal hopping the norm never changes, so the run settles on step one.
func ExampleScan() {
	p := phase.Params{
		Kind:    lattice.KindNRSSH,
		Cells:   2,
		Hopping: lattice.Hopping{NRSSH: lattice.NRSSHHopping{V: 0.5, U: 0.5, R: 0.9}},
	}
	m, err := phase.Scan(context.Background(), p, []float64{0}, []float64{0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s t=%.3f\n", m.Status[0][0], m.Times[0][0])

	// Output:
	// converged t=0.015
}

// ExampleLinspace builds a five-point gain axis.
func ExampleLinspace() {
	axis, err := phase.Linspace(0, 1, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(axis)

	// Output:
	// [0 0.25 0.5 0.75 1]
}
