// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/nhlattice/align"
	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/render"
	"github.com/spf13/cobra"
)

func newFinalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "final",
		Short: "Run to convergence, then backtrack the approach to the final state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			top, err := a.cfg.topology()
			if err != nil {
				return err
			}
			opts := append(a.cfg.evolveOptions(a.log), evolve.WithFrames(a.v.GetInt(localKey(cmd, "frames"))))
			if a.v.GetBool(localKey(cmd, "regenerate")) {
				opts = append(opts, evolve.WithRegeneratedHamiltonian())
			}
			res, phi, tr, err := evolve.FinalState(top, a.cfg.Onsite, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "converged=%t steps=%d time=%.6g diff=%.3g intensity=%.6f\n",
				res.Converged, res.Steps, res.Time, res.Diff, evolve.TotalIntensity(phi))
			fmt.Fprintf(out, "backtrack frames=%d truncated=%t\n", tr.Len(), tr.Truncated)
			if tr.Truncated {
				fmt.Fprintf(out, "cause: %v\n", tr.Cause)
			}
			if a.v.GetBool(localKey(cmd, "compare")) {
				if err = compareForward(out, top, a.cfg.Onsite, res, tr, a.cfg.evolveOptions(a.log)); err != nil {
					return err
				}
			}

			if path := a.v.GetString(localKey(cmd, "png")); path != "" {
				title := fmt.Sprintf("%s final state t=%.4g", top.Kind(), res.Time)
				if err = render.Frames(path, tr.Chronological(), title); err != nil {
					return err
				}
				a.log.WithField("path", path).Info("backtrack written")
			}

			return nil
		},
	}
	cmd.Flags().Int("frames", evolve.DefaultFrames, "number of backtracked frames")
	cmd.Flags().Bool("regenerate", false, "re-assemble H from each reconstructed state instead of freezing it")
	cmd.Flags().Bool("compare", false, "replay the forward run and report its DTW distance to the backtrack")
	cmd.Flags().String("png", "", "write the backtrack plot to this PNG path")
	a.bindLocal(cmd)

	return cmd
}

// compareForward replays the forward run frame by frame and aligns it with
// the reconstruction.
func compareForward(out io.Writer, top lattice.Topology, on lattice.Onsite, res evolve.Result, tr evolve.Trajectory, opts []evolve.Option) error {
	forward, _, err := evolve.Record(top, on, res.Time, append(opts, evolve.WithFrames(res.Steps+1))...)
	if err != nil {
		return err
	}
	rep, err := align.Trajectories(forward, tr.Frames, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "dtw distance=%.6g mean=%.6g forward_frames=%d backtrack_frames=%d\n",
		rep.Distance, rep.MeanCost, rep.Forward, rep.Backward)

	return nil
}
