// SPDX-License-Identifier: MIT

// Command nhlattice drives the non-Hermitian lattice engine: single
// evolutions, final-state backtracking, phase-diagram sweeps and static
// spectra, with optional PNG output.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
