// SPDX-License-Identifier: MIT

// Package evolve: functional configuration for the evolution engine.
// Defaults are the single source of truth; values are validated when an
// entry point resolves them, so a bad Δt from a config file surfaces as
// ErrBadTimeStep instead of a panic.
package evolve

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTimeStep is Δt for a single run.
	DefaultTimeStep = 0.01

	// DefaultTolerance is the total-intensity change below which a run converges.
	DefaultTolerance = 1e-4

	// DefaultMaxTime bounds the simulated time of a run.
	DefaultMaxTime = 500.0

	// DefaultFrames is the visualization budget for Record and Backtrack.
	DefaultFrames = 50

	// DefaultProgressEvery is the step interval of Debug progress logs (0 disables).
	DefaultProgressEvery = 1000
)

// stepSlack absorbs round-off in maxTime/dt before taking the ceiling,
// so 175/0.01 yields 17500 steps rather than 17501.
const stepSlack = 1e-9

// Option mutates Options. Later options win.
type Option func(*Options)

// Options is the resolved engine configuration.
type Options struct {
	dt            float64
	tol           float64
	maxTime       float64
	frames        int
	regenerate    bool
	progressEvery int
	logger        logrus.FieldLogger
}

// TimeStep reports Δt.
func (o Options) TimeStep() float64 { return o.dt }

// Tolerance reports the convergence tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// MaxTime reports the simulated-time bound.
func (o Options) MaxTime() float64 { return o.maxTime }

// Frames reports the frame budget.
func (o Options) Frames() int { return o.frames }

// Regenerate reports whether Backtrack rebuilds H from each backward state.
func (o Options) Regenerate() bool { return o.regenerate }

// Logger returns the configured logger (never nil).
func (o Options) Logger() logrus.FieldLogger { return o.logger }

// MaxSteps is the iteration bound ceil(maxTime/Δt), at least 1.
func (o Options) MaxSteps() int {
	n := int(math.Ceil(o.maxTime/o.dt - stepSlack))
	if n < 1 {
		return 1
	}

	return n
}

// WithTimeStep sets Δt.
func WithTimeStep(dt float64) Option { return func(o *Options) { o.dt = dt } }

// WithTolerance sets the convergence tolerance on |ΔΣ|φ|²|.
func WithTolerance(tol float64) Option { return func(o *Options) { o.tol = tol } }

// WithMaxTime sets the simulated-time bound of Run.
func WithMaxTime(t float64) Option { return func(o *Options) { o.maxTime = t } }

// WithFrames sets the number of frames produced by Record and Backtrack.
func WithFrames(n int) Option { return func(o *Options) { o.frames = n } }

// WithFrozenHamiltonian makes Backtrack build H once from the final state
// and reuse U⁻¹ for every backward step (default).
func WithFrozenHamiltonian() Option { return func(o *Options) { o.regenerate = false } }

// WithRegeneratedHamiltonian makes Backtrack rebuild H, U and U⁻¹ from the
// current backward state at every step.
func WithRegeneratedHamiltonian() Option { return func(o *Options) { o.regenerate = true } }

// WithProgressEvery sets the step interval of Debug progress logs; 0 disables them.
func WithProgressEvery(steps int) Option {
	return func(o *Options) {
		if steps < 0 {
			steps = 0
		}
		o.progressEvery = steps
	}
}

// WithLogger routes engine logs to l. A nil l restores the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// NewOptions resolves opts on top of the defaults and validates the result.
//
// Errors:
//   - ErrBadTimeStep, ErrBadTolerance, ErrBadMaxTime, ErrBadFrames.
func NewOptions(opts ...Option) (Options, error) {
	o := gatherOptions(opts...)

	return o, o.validate()
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		dt:            DefaultTimeStep,
		tol:           DefaultTolerance,
		maxTime:       DefaultMaxTime,
		frames:        DefaultFrames,
		progressEvery: DefaultProgressEvery,
		logger:        discardLogger(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func (o Options) validate() error {
	switch {
	case !positive(o.dt):
		return fmt.Errorf("dt=%v: %w", o.dt, ErrBadTimeStep)
	case !positive(o.tol):
		return fmt.Errorf("tolerance=%v: %w", o.tol, ErrBadTolerance)
	case !positive(o.maxTime):
		return fmt.Errorf("max time=%v: %w", o.maxTime, ErrBadMaxTime)
	case o.frames < 1:
		return fmt.Errorf("frames=%d: %w", o.frames, ErrBadFrames)
	}

	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) }

// discardLogger keeps the library silent unless a logger is supplied.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
