// SPDX-License-Identifier: MIT

package phase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Params fixes everything but gain and loss for a sweep.
type Params struct {
	Kind       lattice.Kind
	Cells      int
	Hopping    lattice.Hopping
	Energy     float64
	Saturation float64
}

// Scan runs one convergence evolution per (gain, loss) pair and collects
// the convergence times into a Map.
//
// Implementation:
//   - Stage 1: Validate axes and Params; build the topology once; resolve the
//     per-point evolve options (scan defaults first, forwarded options after).
//   - Stage 2: Visit the Cartesian product row-major (outer gain, inner loss)
//     on up to WithWorkers goroutines. Each point writes only its own cell.
//   - Stage 3: A degenerate point is recorded as StatusUndefined with Time NaN
//     and the sweep continues. Converged times are clamped to MaxTime.
//
// Cancellation is checked between grid points; a cancelled sweep returns
// ctx.Err() and no Map.
//
// Errors:
//   - ErrEmptyGrid, ErrBadPoints for bad axes.
//   - lattice errors for bad Params; evolve option errors.
//   - ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(G·L·S·N³) for S ≤ ceil(maxTime/Δt), divided across workers.
func Scan(ctx context.Context, p Params, gains, losses []float64, opts ...Option) (*Map, error) {
	if len(gains) == 0 || len(losses) == 0 {
		return nil, phaseErrorf(opScan, ErrEmptyGrid)
	}
	for _, axis := range [...][]float64{gains, losses} {
		for _, v := range axis {
			if !finite(v) {
				return nil, phaseErrorf(opScan, fmt.Errorf("value %v: %w", v, ErrBadPoints))
			}
		}
	}

	o := gatherOptions(opts...)
	evOpts := o.evolveOptions()
	eo, err := evolve.NewOptions(evOpts...)
	if err != nil {
		return nil, phaseErrorf(opScan, err)
	}
	if err = (lattice.Onsite{Energy: p.Energy, Saturation: p.Saturation}).Validate(); err != nil {
		return nil, phaseErrorf(opScan, err)
	}
	top, err := lattice.New(p.Kind, p.Cells, p.Hopping)
	if err != nil {
		return nil, phaseErrorf(opScan, err)
	}

	log := o.logger.WithFields(logrus.Fields{
		"model":   p.Kind.String(),
		"sites":   top.Sites(),
		"points":  len(gains) * len(losses),
		"workers": o.workers,
	})
	log.WithFields(logrus.Fields{
		"dt":       eo.TimeStep(),
		"max_time": eo.MaxTime(),
	}).Info("phase scan started")

	m := newMap(gains, losses, eo.MaxTime(), p.Saturation)
	total := int64(len(gains) * len(losses))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
sweep:
	for i, gain := range gains {
		for j, loss := range losses {
			if gctx.Err() != nil {
				break sweep
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				on := lattice.Onsite{Energy: p.Energy, Gain: gain, Loss: loss, Saturation: p.Saturation}
				if err := m.evaluate(top, on, i, j, evOpts); err != nil {
					return err
				}
				n := done.Add(1)
				if n*10/total != (n-1)*10/total {
					log.WithField("done", n).Info("phase scan progress")
				}

				return nil
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, phaseErrorf(opScan, err)
	}
	// The sweep loop may stop early without any goroutine reporting it.
	if err = ctx.Err(); err != nil {
		return nil, phaseErrorf(opScan, err)
	}

	s := m.Summary()
	log.WithFields(logrus.Fields{
		"converged":     s.Converged,
		"not_converged": s.NotConverged,
		"undefined":     s.Undefined,
	}).Info("phase scan finished")

	return m, nil
}

// evaluate fills cell (i, j). Only non-degenerate failures are returned.
func (m *Map) evaluate(top lattice.Topology, on lattice.Onsite, i, j int, opts []evolve.Option) error {
	res, _, err := evolve.Run(top, on, opts...)
	switch {
	case errors.Is(err, evolve.ErrDegenerate):
		m.Times[i][j] = math.NaN()
		m.Status[i][j] = StatusUndefined
		return nil
	case err != nil:
		return err
	}

	m.Times[i][j] = math.Min(res.Time, m.MaxTime)
	m.Converged[i][j] = res.Converged
	if res.Converged {
		m.Status[i][j] = StatusConverged
	} else {
		m.Status[i][j] = StatusNotConverged
	}

	return nil
}
