// Package evolve advances a wavefunction on a non-Hermitian lattice with the
// second-order propagator U = (I − iHΔt/2)(I + iHΔt/2)⁻¹.
//
// Entry points:
//   - Run         — convergence-driven loop; H is regenerated from φ each step
//     (saturable gain makes it nonlinear), stops on |ΔΣ|φ|²| < tolerance or
//     after ceil(maxTime/Δt) steps.
//   - Record      — fixed-duration evolution sampled into intensity frames.
//   - Backtrack   — reconstructs earlier states from a final one with U⁻¹;
//     failures truncate the trajectory instead of failing the call.
//   - FinalState  — Run followed by Backtrack.
//
// Building blocks (Propagator, InversePropagator, Step, Excitation,
// Intensity, TotalIntensity) are exported for callers that drive their
// own loops.
//
// Configuration is by functional options; logging goes through a
// logrus.FieldLogger supplied with WithLogger and is silent otherwise.
//
// Numerical degeneracy (singular I + iHΔt/2, non-finite products) surfaces
// as ErrDegenerate wrapping the matrix-level sentinel; NaN/Inf never leak
// into returned states.
package evolve
