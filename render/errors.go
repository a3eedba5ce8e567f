// SPDX-License-Identifier: MIT
// Package render: sentinel error set.

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData indicates an empty input series.
	ErrNoData = errors.New("render: nothing to plot")

	// ErrShape indicates mismatched input lengths.
	ErrShape = errors.New("render: inconsistent input lengths")
)

// Operation tags for renderErrorf.
const (
	opFrames      = "Frames"
	opPhaseMap    = "PhaseMap"
	opBands       = "Bands"
	opEigenvalues = "Eigenvalues"
	opSave        = "save"
)

func renderErrorf(tag string, err error) error {
	return fmt.Errorf("render: %s: %w", tag, err)
}
