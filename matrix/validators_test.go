// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/nhlattice/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateFinite(MustDense(t, 2, 2)))

	require.NoError(t, matrix.ValidateFiniteVec([]complex128{1, 1i}))
	require.ErrorIs(t, matrix.ValidateFiniteVec([]complex128{1, complex(math.NaN(), 0)}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFiniteVec(nil), matrix.ErrNilMatrix)
}

func TestValidateVecLenAndMul(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen(make([]complex128, 3), 3))
	require.ErrorIs(t, matrix.ValidateVecLen(make([]complex128, 2), 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
}

func TestValidateHermitian(t *testing.T) {
	t.Parallel()

	h := MustFromRows(t, [][]complex128{{1, 2i}, {-2i, 0}})
	require.NoError(t, matrix.ValidateHermitian(h, 0))

	g := MustFromRows(t, [][]complex128{{1i, 0}, {0, 0}})
	require.ErrorIs(t, matrix.ValidateHermitian(g, 1e-12), matrix.ErrNotHermitian)
}
