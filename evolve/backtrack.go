// SPDX-License-Identifier: MIT

package evolve

import (
	"fmt"

	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/matrix"
	"github.com/sirupsen/logrus"
)

// Trajectory is a backward reconstruction ending at a known final state.
//   - Frames[0] is the final state; Frames[k] lies k·Δt earlier.
//   - Truncated is set when a backward step failed; Cause holds the reason
//     and Frames holds everything computed before it.
type Trajectory struct {
	Frames    []Frame
	Truncated bool
	Cause     error
}

// Len returns the number of recorded frames.
func (t Trajectory) Len() int { return len(t.Frames) }

// Chronological returns the frames oldest-first (a new slice; the
// intensity slices are shared).
func (t Trajectory) Chronological() []Frame {
	out := make([]Frame, len(t.Frames))
	for i, f := range t.Frames {
		out[len(out)-1-i] = f
	}

	return out
}

// Backtrack reconstructs the approach to final by repeated U⁻¹ steps.
//
// Implementation:
//   - Frozen mode (default): H is assembled once at final, U and U⁻¹ once;
//     each backward step is φ ← U⁻¹·φ. This approximates the forward
//     trajectory, which used a state-dependent H.
//   - Regenerated mode (WithRegeneratedHamiltonian): H, U and U⁻¹ are
//     rebuilt from the current backward state every step.
//   - Produces WithFrames frames, frame k at finalTime − k·Δt.
//
// A singular or non-finite backward step is not an error: the trajectory is
// returned truncated with Cause set.
//
// Errors:
//   - option errors, lattice.ErrStateLength, matrix.ErrNaNInf (non-finite final).
//
// Complexity:
//   - Frozen: Time O(N³ + F·N²); Regenerated: O(F·N³). Space O(N² + F·N).
func Backtrack(top lattice.Topology, on lattice.Onsite, final []complex128, finalTime float64, opts ...Option) (Trajectory, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return Trajectory{}, evolveErrorf(opBacktrack, err)
	}
	if top == nil {
		return Trajectory{}, evolveErrorf(opBacktrack, matrix.ErrNilMatrix)
	}
	if len(final) != top.Sites() {
		return Trajectory{}, evolveErrorf(opBacktrack,
			fmt.Errorf("len=%d, N=%d: %w", len(final), top.Sites(), lattice.ErrStateLength))
	}
	if err = matrix.ValidateFiniteVec(final); err != nil {
		return Trajectory{}, evolveErrorf(opBacktrack, err)
	}
	if err = on.Validate(); err != nil {
		return Trajectory{}, evolveErrorf(opBacktrack, err)
	}

	phi := append([]complex128(nil), final...)
	tr := Trajectory{Frames: make([]Frame, 0, o.frames)}
	tr.Frames = append(tr.Frames, Frame{Time: finalTime, Intensity: Intensity(phi)})

	var back *matrix.Dense
	for k := 1; k < o.frames; k++ {
		if back == nil || o.regenerate {
			if back, err = backwardOperator(top, on, phi, o.dt); err != nil {
				return truncate(tr, err, o.logger, k), nil
			}
		}
		if phi, err = Step(back, phi); err != nil {
			return truncate(tr, err, o.logger, k), nil
		}
		tr.Frames = append(tr.Frames, Frame{
			Time:      finalTime - float64(k)*o.dt,
			Intensity: Intensity(phi),
		})
	}

	return tr, nil
}

// backwardOperator builds U⁻¹ for H assembled at phi.
func backwardOperator(top lattice.Topology, on lattice.Onsite, phi []complex128, dt float64) (*matrix.Dense, error) {
	h, err := lattice.Assemble(top, phi, on)
	if err != nil {
		return nil, err
	}
	u, err := Propagator(h, dt)
	if err != nil {
		return nil, err
	}

	return InversePropagator(u)
}

func truncate(tr Trajectory, cause error, log logrus.FieldLogger, step int) Trajectory {
	tr.Truncated = true
	tr.Cause = cause
	log.WithField("step", step).WithError(cause).Warn("backtrack stopped early")

	return tr
}

// FinalState runs the convergence loop and reconstructs the approach to the
// state it ends in.
//
// Errors:
//   - any error of Run; a degenerate forward run is fatal.
//   - any error of Backtrack.
func FinalState(top lattice.Topology, on lattice.Onsite, opts ...Option) (Result, []complex128, Trajectory, error) {
	res, phi, err := Run(top, on, opts...)
	if err != nil {
		return res, phi, Trajectory{}, err
	}
	tr, err := Backtrack(top, on, phi, res.Time, opts...)
	if err != nil {
		return res, phi, Trajectory{}, err
	}

	return res, phi, tr, nil
}
