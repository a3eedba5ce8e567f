// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Profiles warps two sequences of equal-length profiles onto each other with
// the Euclidean distance as local cost, and returns the accumulated cost of
// the optimal alignment. A nil opts means DefaultOptions.
//
// Implementation:
//   - Stage 1: D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//   - Stage 2: D[i][j] = ‖a[i−1] − b[j−1]‖ + min(D[i−1][j−1],
//     D[i−1][j] + penalty, D[i][j−1] + penalty), skipping |i−j| > Window.
//   - Stage 3: With ReturnPath, walk back from (n, m) along the minimal
//     predecessor, preferring the diagonal on ties.
//
// A window narrower than |n−m| makes the end cell unreachable: the distance is +Inf.
//
// Errors:
//   - ErrEmptySequence, ErrDimensionMismatch, ErrBadWindow, ErrPathNeedsFullMatrix.
//
// Complexity:
//   - Time O(n·m·d), Memory O(n·m) (FullMatrix) or O(m) (RollingArray).
func Profiles(a, b [][]float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, alignErrorf(opProfiles, ErrEmptySequence)
	}
	d := len(a[0])
	for _, seq := range [...][][]float64{a, b} {
		for k, p := range seq {
			if len(p) != d {
				return 0, nil, alignErrorf(opProfiles, fmt.Errorf("profile %d has %d entries, want %d: %w", k, len(p), d, ErrDimensionMismatch))
			}
		}
	}

	dist, path, err := warp(len(a), len(b), func(i, j int) float64 { return floats.Distance(a[i], b[j], 2) }, opts)
	if err != nil {
		return 0, nil, alignErrorf(opProfiles, err)
	}

	return dist, path, nil
}

// Series is Profiles for scalar sequences, with |a_i − b_j| as local cost.
func Series(a, b []float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, alignErrorf(opSeries, ErrEmptySequence)
	}
	dist, path, err := warp(len(a), len(b), func(i, j int) float64 { return math.Abs(a[i] - b[j]) }, opts)
	if err != nil {
		return 0, nil, alignErrorf(opSeries, err)
	}

	return dist, path, nil
}

// warp runs the dynamic program over an n×m local cost.
func warp(n, m int, cost func(i, j int) float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < 0 {
		return 0, nil, ErrBadWindow
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsFullMatrix
	}
	window := o.Window
	if window == 0 {
		window = math.MaxInt
	}
	inf := math.Inf(1)

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			curr[j] = cost(i-1, j-1) + min(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
		}
	}
	dist := row(n)[m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	path := make([]Coord, 0, n+m)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return dist, path, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
