// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func newEvolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Evolve a site-0 excitation for a fixed duration and sample intensity frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			top, err := a.cfg.topology()
			if err != nil {
				return err
			}
			opts := append(a.cfg.evolveOptions(a.log), evolve.WithFrames(a.v.GetInt(localKey(cmd, "frames"))))
			frames, phi, err := evolve.Record(top, a.cfg.Onsite, a.v.GetFloat64(localKey(cmd, "duration")), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "model=%s sites=%d frames=%d\n", top.Kind(), top.Sites(), len(frames))
			for _, f := range frames {
				fmt.Fprintf(out, "t=%-10.4g total=%.6f\n", f.Time, floats.Sum(f.Intensity))
			}
			fmt.Fprintf(out, "final total=%.6f\n", evolve.TotalIntensity(phi))

			if path := a.v.GetString(localKey(cmd, "png")); path != "" {
				title := fmt.Sprintf("%s γ1=%.3g γ2=%.3g", top.Kind(), a.cfg.Onsite.Gain, a.cfg.Onsite.Loss)
				if err = render.Frames(path, frames, title); err != nil {
					return err
				}
				a.log.WithField("path", path).Info("frames written")
			}

			return nil
		},
	}
	cmd.Flags().Float64("duration", 100, "simulated time to evolve")
	cmd.Flags().Int("frames", evolve.DefaultFrames, "number of intensity frames to sample")
	cmd.Flags().String("png", "", "write the frames plot to this PNG path")
	a.bindLocal(cmd)

	return cmd
}
