// Package nhlattice simulates single-particle dynamics on one-dimensional
// non-Hermitian lattices with saturable gain and constant loss.
//
// What is in the box?
//
//	• Lattice models: non-reciprocal SSH chain (NRSSH) and the Diamond chain
//	• Hamiltonian assembly with state-dependent gain γ1/(1+S|φ|²) and loss γ2
//	• Second-order propagator U = (I − iHΔt/2)(I + iHΔt/2)⁻¹ on a complex
//	  dense matrix kernel with partial-pivot LU
//	• Convergence-driven evolution, fixed-duration recording and
//	  backward reconstruction of the approach to a final state
//	• Parallel (gain, loss) phase-diagram sweeps with region and boundary
//	  extraction
//	• Static spectra and Bloch bands of the linear Hamiltonian
//	• PNG figures and a cobra/viper command-line driver
//
// Packages:
//
//	matrix/    — complex dense matrices, LU, inverse, validators
//	lattice/   — topologies, onsite model, Hamiltonian assembly
//	evolve/    — propagator, Run, Record, Backtrack, FinalState
//	phase/     — phase-diagram scanner and Map analysis
//	gridgraph/ — labelled-grid regions and boundaries (phase maps)
//	spectrum/  — eigenvalues, eigenvector intensities, Bloch bands
//	align/     — DTW comparison of forward and reconstructed trajectories
//	render/    — gonum/plot figures
//	cmd/nhlattice — CLI
//
// Quick example:
//
//	top, _ := lattice.NewNRSSH(40, lattice.NRSSHHopping{V: 0.3, U: 0.5, R: 0.7})
//	on := lattice.Onsite{Gain: 0.9, Loss: 0.15, Saturation: 1}
//	res, phi, _ := evolve.Run(top, on, evolve.WithMaxTime(175))
//	fmt.Println(res.Converged, res.Time, evolve.TotalIntensity(phi))
package nhlattice
