// SPDX-License-Identifier: MIT

package evolve

import (
	"math"

	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/matrix"
	"github.com/sirupsen/logrus"
)

// Result summarizes one convergence run. Immutable once returned.
type Result struct {
	// Time is the elapsed simulated time, Steps·Δt.
	Time float64
	// Converged is true when the total-intensity change fell below tolerance.
	Converged bool
	// Steps is the number of propagator applications performed.
	Steps int
	// Diff is the last |Σ|φ_new|² − Σ|φ|²|.
	Diff float64
}

// Frame is one intensity snapshot for plotting.
type Frame struct {
	Time      float64
	Intensity []float64
}

// Run evolves a unit excitation on site 0 until the total intensity settles
// or the simulated-time bound is reached.
//
// Implementation:
//   - Stage 1: Resolve options; φ = e₀; diff = tolerance + 1.
//   - Stage 2: Each step assembles H(φ), builds U, sets φ ← U·φ and
//     diff = |Σ|φ_new|² − Σ|φ|²|, then advances time by Δt.
//   - Stage 3: Stop converged when diff < tolerance; otherwise stop
//     unconverged once Steps reaches ceil(maxTime/Δt). The tolerance check
//     runs first, so convergence on the last allowed step counts.
//
// Elapsed time is Steps·Δt rather than a running sum, so it never drifts
// past maxTime + Δt.
//
// Errors:
//   - option errors (ErrBadTimeStep, ErrBadTolerance, ErrBadMaxTime, ErrBadFrames).
//   - lattice errors from Assemble (ErrBadOnsite, ...).
//   - ErrDegenerate: no valid next state exists. The partial Result and the
//     last finite state are returned alongside the error.
//
// Complexity:
//   - Time O(S·N³) for S ≤ ceil(maxTime/Δt) steps, Space O(N²).
func Run(top lattice.Topology, on lattice.Onsite, opts ...Option) (Result, []complex128, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return Result{}, nil, evolveErrorf(opRun, err)
	}
	if top == nil {
		return Result{}, nil, evolveErrorf(opRun, matrix.ErrNilMatrix)
	}
	if err = on.Validate(); err != nil {
		return Result{}, nil, evolveErrorf(opRun, err)
	}
	phi, err := Excitation(top.Sites(), 0)
	if err != nil {
		return Result{}, nil, evolveErrorf(opRun, err)
	}

	log := o.logger.WithFields(logrus.Fields{
		"model": top.Kind().String(),
		"sites": top.Sites(),
		"gain":  on.Gain,
		"loss":  on.Loss,
	})
	maxSteps := o.MaxSteps()
	res := Result{Diff: o.tol + 1}
	total := TotalIntensity(phi)

	var next []complex128
	var nextTotal float64
	for {
		if next, err = advance(top, on, phi, o.dt); err != nil {
			log.WithFields(logrus.Fields{"step": res.Steps, "time": res.Time}).
				WithError(err).Warn("evolution aborted")
			return res, phi, evolveErrorf(opRun, err)
		}
		nextTotal = TotalIntensity(next)
		res.Diff = math.Abs(nextTotal - total)
		phi, total = next, nextTotal
		res.Steps++
		res.Time = float64(res.Steps) * o.dt

		if res.Diff < o.tol {
			res.Converged = true
			break
		}
		if res.Steps >= maxSteps {
			break
		}
		if o.progressEvery > 0 && res.Steps%o.progressEvery == 0 {
			log.WithFields(logrus.Fields{
				"step": res.Steps,
				"time": res.Time,
				"diff": res.Diff,
			}).Debug("evolving")
		}
	}

	entry := log.WithFields(logrus.Fields{
		"step":      res.Steps,
		"time":      res.Time,
		"diff":      res.Diff,
		"intensity": total,
	})
	if res.Converged {
		entry.Debug("converged")
	} else {
		entry.Debug("max time reached without convergence")
	}

	return res, phi, nil
}

// Record evolves a unit excitation on site 0 for a fixed duration and samples
// intensity frames evenly along the way, starting with t = 0.
//
// Implementation:
//   - steps = floor(duration/Δt); interval = max(1, steps/frames).
//   - Step s (0..steps) is sampled when s%interval == 0, until the frame
//     budget is spent. The returned state is φ after all steps.
//
// Errors:
//   - option and lattice errors; ErrBadMaxTime for a non-positive duration.
//   - ErrDegenerate, returned with the frames recorded so far.
func Record(top lattice.Topology, on lattice.Onsite, duration float64, opts ...Option) ([]Frame, []complex128, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, nil, evolveErrorf(opRecord, err)
	}
	if !positive(duration) {
		return nil, nil, evolveErrorf(opRecord, ErrBadMaxTime)
	}
	if top == nil {
		return nil, nil, evolveErrorf(opRecord, matrix.ErrNilMatrix)
	}
	if err = on.Validate(); err != nil {
		return nil, nil, evolveErrorf(opRecord, err)
	}
	phi, err := Excitation(top.Sites(), 0)
	if err != nil {
		return nil, nil, evolveErrorf(opRecord, err)
	}

	steps := int(duration/o.dt + stepSlack)
	interval := steps / o.frames
	if interval < 1 {
		interval = 1
	}
	frames := make([]Frame, 0, o.frames)
	for s := 0; s <= steps; s++ {
		if s%interval == 0 && len(frames) < o.frames {
			frames = append(frames, Frame{Time: float64(s) * o.dt, Intensity: Intensity(phi)})
		}
		if s == steps {
			break
		}
		next, err := advance(top, on, phi, o.dt)
		if err != nil {
			return frames, phi, evolveErrorf(opRecord, err)
		}
		phi = next
	}
	o.logger.WithFields(logrus.Fields{
		"steps":  steps,
		"frames": len(frames),
	}).Debug("recorded evolution")

	return frames, phi, nil
}

// advance performs one forward step with H regenerated from phi.
func advance(top lattice.Topology, on lattice.Onsite, phi []complex128, dt float64) ([]complex128, error) {
	h, err := lattice.Assemble(top, phi, on)
	if err != nil {
		return nil, err
	}
	u, err := Propagator(h, dt)
	if err != nil {
		return nil, err
	}

	return Step(u, phi)
}
