// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/nhlattice/evolve"
)

// Report summarizes how closely a reconstructed trajectory follows the
// forward one.
type Report struct {
	// Distance is the accumulated Euclidean cost of the optimal alignment.
	Distance float64
	// MeanCost is Distance per path step (per max(n, m) without a path).
	MeanCost float64
	// Forward and Backward are the frame counts that were aligned.
	Forward, Backward int
	// Path is set when Options.ReturnPath is true.
	Path []Coord
}

// Trajectories aligns reconstructed frames (any order, e.g. from
// evolve.Backtrack) against the forward frames inside their time span
// [earliest − slack, latest + slack], where slack is half the smallest gap
// between reconstructed frames. Forward frames may be sampled more
// coarsely; the warping absorbs the difference.
//
// Errors:
//   - ErrEmptySequence when either side, after clipping, has no frames.
//   - the errors of Profiles.
func Trajectories(forward, backward []evolve.Frame, opts *Options) (Report, error) {
	if len(forward) == 0 || len(backward) == 0 {
		return Report{}, alignErrorf(opTrajectories, ErrEmptySequence)
	}
	back := slices.Clone(backward)
	slices.SortStableFunc(back, func(x, y evolve.Frame) int {
		switch {
		case x.Time < y.Time:
			return -1
		case x.Time > y.Time:
			return 1
		}
		return 0
	})
	slack := 0.0
	for k := 1; k < len(back); k++ {
		if gap := back[k].Time - back[k-1].Time; gap > 0 && (slack == 0 || gap/2 < slack) {
			slack = gap / 2
		}
	}
	lo, hi := back[0].Time-slack, back[len(back)-1].Time+slack

	var fwd [][]float64
	for _, f := range forward {
		if f.Time >= lo && f.Time <= hi {
			fwd = append(fwd, f.Intensity)
		}
	}
	if len(fwd) == 0 {
		return Report{}, alignErrorf(opTrajectories, fmt.Errorf("no forward frame in [%g, %g]: %w", lo, hi, ErrEmptySequence))
	}
	bwd := make([][]float64, len(back))
	for k, f := range back {
		bwd[k] = f.Intensity
	}

	dist, path, err := Profiles(fwd, bwd, opts)
	if err != nil {
		return Report{}, alignErrorf(opTrajectories, err)
	}
	steps := max(len(fwd), len(bwd))
	if path != nil {
		steps = len(path)
	}

	return Report{
		Distance: dist,
		MeanCost: dist / float64(steps),
		Forward:  len(fwd),
		Backward: len(bwd),
		Path:     path,
	}, nil
}
