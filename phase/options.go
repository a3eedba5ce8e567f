// SPDX-License-Identifier: MIT

package phase

import (
	"io"
	"runtime"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTimeStep is Δt for every grid point.
	DefaultTimeStep = 0.015

	// DefaultTolerance is the per-point convergence tolerance.
	DefaultTolerance = 1e-4

	// DefaultMaxTime is the tight per-point time bound of a sweep.
	DefaultMaxTime = 10.0

	// DefaultWorkers evaluates grid points sequentially.
	DefaultWorkers = 1

	// DefaultColors is the colour budget used by Map.ColorIndex callers.
	DefaultColors = 50
)

// Option mutates Options. Later options win.
type Option func(*Options)

// Options is the resolved scan configuration.
type Options struct {
	workers int
	logger  logrus.FieldLogger
	evolve  []evolve.Option
}

// WithWorkers bounds the number of grid points evaluated concurrently.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithLogger routes progress logs to l. A nil l keeps the scan silent.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithEvolveOptions forwards options to every per-point evolve.Run
// (e.g. evolve.WithTimeStep). They apply on top of the scan defaults.
func WithEvolveOptions(opts ...evolve.Option) Option {
	return func(o *Options) { o.evolve = append(o.evolve, opts...) }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  discardLogger(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// evolveOptions prepends the scan defaults to the forwarded options.
func (o Options) evolveOptions() []evolve.Option {
	out := []evolve.Option{
		evolve.WithTimeStep(DefaultTimeStep),
		evolve.WithTolerance(DefaultTolerance),
		evolve.WithMaxTime(DefaultMaxTime),
		evolve.WithProgressEvery(0),
	}

	return append(out, o.evolve...)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
