// SPDX-License-Identifier: MIT
// Package align: sentinel error set.

package align

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")

	// ErrDimensionMismatch indicates profiles of different lengths.
	ErrDimensionMismatch = errors.New("align: profile lengths differ")

	// ErrBadWindow indicates a negative Sakoe–Chiba window.
	ErrBadWindow = errors.New("align: window must be >= 0")

	// ErrPathNeedsFullMatrix indicates path recovery was requested with RollingArray.
	ErrPathNeedsFullMatrix = errors.New("align: ReturnPath requires MemoryMode=FullMatrix")
)

const (
	opProfiles     = "Profiles"
	opSeries       = "Series"
	opTrajectories = "Trajectories"
)

func alignErrorf(tag string, err error) error {
	return fmt.Errorf("align: %s: %w", tag, err)
}
