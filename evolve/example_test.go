// SPDX-License-Identifier: MIT
package evolve_test

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/lattice"
)

// ExampleRun evolves a lossless Diamond chain: intensity is conserved, so
// the run converges on its first step.
func ExampleRun() {
	top, err := lattice.NewDiamond(4, lattice.DiamondHopping{T1: 0.2, T2: 0.5, T3: 0.9, T4: 0.4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, phi, err := evolve.Run(top, lattice.Onsite{Saturation: 1}, evolve.WithMaxTime(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("converged=%v steps=%d time=%.2f intensity=%.6f\n",
		res.Converged, res.Steps, res.Time, evolve.TotalIntensity(phi))

	// Output:
	// converged=true steps=1 time=0.01 intensity=1.000000
}

// ExampleBacktrack shows the frame order: index 0 is the final state.
func ExampleBacktrack() {
	top, _ := lattice.NewNRSSH(3, lattice.NRSSHHopping{V: 0.2, U: 0.5, R: 0.9})
	final, _ := evolve.Excitation(top.Sites(), 2)
	tr, err := evolve.Backtrack(top, lattice.Onsite{Gain: 0.5, Loss: 0.1, Saturation: 1}, final, 2,
		evolve.WithFrames(3), evolve.WithTimeStep(0.5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, f := range tr.Frames {
		fmt.Printf("t=%.1f\n", f.Time)
	}

	// Output:
	// t=2.0
	// t=1.5
	// t=1.0
}
