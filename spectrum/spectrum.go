// SPDX-License-Identifier: MIT

package spectrum

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/katalvlaran/nhlattice/matrix"
	"gonum.org/v1/gonum/mat"
)

// Eigenvalues returns the spectrum of H = hopping + energy·I.
//
// Implementation:
//   - Stage 1: Assemble the static Hamiltonian and test it for symmetry.
//   - Stage 2a: Symmetric → mat.EigenSym; values are real and ascending.
//   - Stage 2b: Otherwise → mat.Eigen; values sorted by real, then imaginary part.
//
// Errors:
//   - lattice errors from AssembleStatic; ErrNoConvergence.
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Eigenvalues(top lattice.Topology, energy float64) ([]complex128, error) {
	a, sym, err := realHamiltonian(top, energy)
	if err != nil {
		return nil, spectrumErrorf(opEigenvalues, err)
	}
	n, _ := a.Dims()

	if sym {
		var es mat.EigenSym
		if !es.Factorize(mat.NewSymDense(n, a.RawMatrix().Data), false) {
			return nil, spectrumErrorf(opEigenvalues, ErrNoConvergence)
		}
		vals := es.Values(nil)
		out := make([]complex128, n)
		for i, v := range vals {
			out[i] = complex(v, 0)
		}

		return out, nil
	}

	var eig mat.Eigen
	if !eig.Factorize(a, mat.EigenNone) {
		return nil, spectrumErrorf(opEigenvalues, ErrNoConvergence)
	}
	out := eig.Values(nil)
	slices.SortFunc(out, compareComplex)

	return out, nil
}

// EigenvectorIntensity returns |v_i|² of the index-th eigenvector (ascending
// eigenvalue order) of a symmetric H. The result sums to one.
//
// Errors:
//   - matrix.ErrNotHermitian for a non-symmetric H.
//   - ErrBadIndex, ErrNoConvergence, lattice errors.
func EigenvectorIntensity(top lattice.Topology, energy float64, index int) ([]float64, error) {
	a, sym, err := realHamiltonian(top, energy)
	if err != nil {
		return nil, spectrumErrorf(opIntensity, err)
	}
	if !sym {
		return nil, spectrumErrorf(opIntensity, matrix.ErrNotHermitian)
	}
	n, _ := a.Dims()
	if index < 0 || index >= n {
		return nil, spectrumErrorf(opIntensity, fmt.Errorf("index %d of %d: %w", index, n, ErrBadIndex))
	}

	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(n, a.RawMatrix().Data), true) {
		return nil, spectrumErrorf(opIntensity, ErrNoConvergence)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	out := make([]float64, n)
	for i := range out {
		v := vecs.At(i, index)
		out[i] = v * v
	}

	return out, nil
}

// realHamiltonian converts the static Hamiltonian to a gonum matrix.
// Hopping amplitudes and onsite energy are real, so no information is lost.
func realHamiltonian(top lattice.Topology, energy float64) (*mat.Dense, bool, error) {
	h, err := lattice.AssembleStatic(top, energy)
	if err != nil {
		return nil, false, err
	}
	sym, err := matrix.IsHermitian(h)
	if err != nil {
		return nil, false, err
	}
	n := h.Rows()
	data := make([]float64, 0, n*n)
	for _, row := range h.RealParts() {
		data = append(data, row...)
	}

	return mat.NewDense(n, n, data), sym, nil
}

func compareComplex(a, b complex128) int {
	if c := cmp.Compare(real(a), real(b)); c != 0 {
		return c
	}

	return cmp.Compare(imag(a), imag(b))
}
