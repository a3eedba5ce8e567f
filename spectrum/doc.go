// Package spectrum diagonalizes the linear (gain- and loss-free) Hamiltonian
// of a lattice topology.
//
// Eigenvalues picks the solver by structure: gonum's mat.EigenSym when H is
// real symmetric (Diamond, reciprocal NRSSH) and mat.Eigen otherwise
// (non-reciprocal NRSSH). Bands evaluates the Bloch Hamiltonian of the
// infinite chain over Momenta for band-structure plots.
package spectrum
