// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nhlattice/gridgraph"
)

var sinkRegions []gridgraph.Region

// BenchmarkConnectedComponents measures region labelling on a 200×200 grid
// with three random labels.
func BenchmarkConnectedComponents(b *testing.B) {
	const size = 200
	rng := rand.New(rand.NewSource(1))
	grid := make([][]int, size)
	for y := range grid {
		grid[y] = make([]int, size)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(3)
		}
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkRegions = gg.ConnectedComponents()
	}
}
