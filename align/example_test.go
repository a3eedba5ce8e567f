// SPDX-License-Identifier: MIT
package align_test

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/align"
)

// ExampleSeries aligns a sequence with a time-stretched copy of itself.
func ExampleSeries() {
	opts := align.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := align.Series([]float64{0, 1, 2}, []float64{0, 0, 1, 2, 2}, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist, path)

	// Output:
	// 0 [{0 0} {0 1} {1 2} {2 3} {2 4}]
}
