// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/render"
	"github.com/katalvlaran/nhlattice/spectrum"
	"github.com/spf13/cobra"
)

func newSpectrumCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Print the spectrum of the gain- and loss-free Hamiltonian",
		Long: `spectrum diagonalizes the finite chain, or with --momenta N evaluates the
Bloch bands of the infinite chain at N momenta over [−π, π].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			path := a.v.GetString(localKey(cmd, "png"))
			energy := a.cfg.Onsite.Energy

			if n := a.v.GetInt(localKey(cmd, "momenta")); n > 0 {
				ks, err := spectrum.Momenta(n)
				if err != nil {
					return err
				}
				bands, err := spectrum.Bands(a.cfg.Kind, a.cfg.Hopping, energy, ks)
				if err != nil {
					return err
				}
				for i, row := range bands {
					fmt.Fprintf(out, "k=%+.4f", ks[i])
					for _, e := range row {
						fmt.Fprintf(out, " %.6f%+.6fi", real(e), imag(e))
					}
					fmt.Fprintln(out)
				}
				if path != "" {
					return render.Bands(path, ks, bands, fmt.Sprintf("%s bands", a.cfg.Kind))
				}

				return nil
			}

			top, err := a.cfg.topology()
			if err != nil {
				return err
			}
			vals, err := spectrum.Eigenvalues(top, energy)
			if err != nil {
				return err
			}
			for i, e := range vals {
				fmt.Fprintf(out, "%d %.6f %+.6f\n", i, real(e), imag(e))
			}
			if path != "" {
				return render.Eigenvalues(path, vals, fmt.Sprintf("%s spectrum N=%d", top.Kind(), top.Sites()))
			}

			return nil
		},
	}
	cmd.Flags().Int("momenta", 0, "evaluate Bloch bands at this many momenta (0 = finite chain)")
	cmd.Flags().String("png", "", "write the spectrum plot to this PNG path")
	a.bindLocal(cmd)

	return cmd
}
