// SPDX-License-Identifier: MIT
package evolve_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkU   *matrix.Dense
	sinkRes evolve.Result
)

func BenchmarkPropagator(b *testing.B) {
	b.ReportAllocs()
	for _, cells := range []int{10, 25, 50} {
		b.Run(fmt.Sprintf("sites=%d", 2*cells), func(b *testing.B) {
			top := MustNRSSH(b, cells, 0.2, 0.5, 0.9)
			h, err := lattice.Assemble(top, randomState(top.Sites(), 1), lattice.Onsite{Gain: 0.9, Loss: 0.15, Saturation: 1})
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u, err := evolve.Propagator(h, 0.01)
				if err != nil {
					b.Fatal(err)
				}
				sinkU = u
			}
		})
	}
}

func BenchmarkRun(b *testing.B) {
	b.ReportAllocs()
	top := MustDiamond(b, 5, 0.5, 0.5, 0.5, 0.5)
	on := lattice.Onsite{Gain: 0.6, Loss: 0.3, Saturation: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, _, err := evolve.Run(top, on, evolve.WithTimeStep(0.015), evolve.WithMaxTime(2))
		if err != nil {
			b.Fatal(err)
		}
		sinkRes = res
	}
}
