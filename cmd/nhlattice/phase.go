// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/gridgraph"
	"github.com/katalvlaran/nhlattice/phase"
	"github.com/katalvlaran/nhlattice/render"
	"github.com/spf13/cobra"
)

func newPhaseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Sweep gain and loss over [0, 1]² and map convergence times",
		Long: `phase runs one convergence evolution per (gain, loss) grid point.

The sweep uses its own defaults (dt=0.015, max-time=10); the global --dt,
--tolerance and --max-time override them only when set explicitly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			axis, err := phase.UnitGrid(a.v.GetInt(localKey(cmd, "points")))
			if err != nil {
				return err
			}
			conn := gridgraph.Conn4
			if a.v.GetBool(localKey(cmd, "diagonal")) {
				conn = gridgraph.Conn8
			}

			p := phase.Params{
				Kind:       a.cfg.Kind,
				Cells:      a.cfg.Cells,
				Hopping:    a.cfg.Hopping,
				Energy:     a.cfg.Onsite.Energy,
				Saturation: a.cfg.Onsite.Saturation,
			}
			m, err := phase.Scan(cmd.Context(), p, axis, axis,
				phase.WithWorkers(a.v.GetInt(localKey(cmd, "workers"))),
				phase.WithLogger(a.log),
				phase.WithEvolveOptions(a.explicitEvolveOptions()...),
			)
			if err != nil {
				return err
			}
			regions, err := m.Regions(conn)
			if err != nil {
				return err
			}
			boundary, err := m.Boundary(conn)
			if err != nil {
				return err
			}

			s := m.Summary()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "points=%d converged=%d not_converged=%d undefined=%d\n",
				s.Points, s.Converged, s.NotConverged, s.Undefined)
			fmt.Fprintf(out, "max_converged_time=%.4g mean_converged_time=%.4g\n",
				s.MaxConvergedTime, s.MeanConvergedTime)
			fmt.Fprintf(out, "regions=%d boundary_points=%d\n", len(regions), len(boundary))

			if path := a.v.GetString(localKey(cmd, "png")); path != "" {
				title := fmt.Sprintf("%s phase diagram S=%.3g", a.cfg.Kind, a.cfg.Onsite.Saturation)
				if err = render.PhaseMap(path, m, title); err != nil {
					return err
				}
				a.log.WithField("path", path).Info("phase map written")
			}

			return nil
		},
	}
	cmd.Flags().Int("points", 10, "grid points per axis")
	cmd.Flags().Int("workers", 0, "concurrent grid points (0 = all CPUs)")
	cmd.Flags().Bool("diagonal", false, "treat diagonal neighbours as adjacent when grouping regions")
	cmd.Flags().String("png", "", "write the phase map to this PNG path")
	a.bindLocal(cmd)

	return cmd
}

// explicitEvolveOptions forwards only the time settings the user set, so
// the sweep keeps its own defaults otherwise.
func (a *app) explicitEvolveOptions() []evolve.Option {
	opts := []evolve.Option{evolve.WithLogger(a.log)}
	if a.v.IsSet(keyDt) {
		opts = append(opts, evolve.WithTimeStep(a.cfg.TimeStep))
	}
	if a.v.IsSet(keyTolerance) {
		opts = append(opts, evolve.WithTolerance(a.cfg.Tolerance))
	}
	if a.v.IsSet(keyMaxTime) {
		opts = append(opts, evolve.WithMaxTime(a.cfg.MaxTime))
	}

	return opts
}
