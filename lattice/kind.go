// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"
)

// Kind tags a topology variant.
type Kind uint8

const (
	// KindNRSSH is the two-site non-reciprocal SSH chain.
	KindNRSSH Kind = iota + 1

	// KindDiamond is the three-site diamond chain with a terminal site.
	KindDiamond
)

// String returns the lower-case variant name ("nrssh", "diamond").
func (k Kind) String() string {
	switch k {
	case KindNRSSH:
		return "nrssh"
	case KindDiamond:
		return "diamond"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a case-insensitive name to a Kind.
//
// Errors:
//   - ErrUnknownKind for anything other than "nrssh" or "diamond".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nrssh":
		return KindNRSSH, nil
	case "diamond":
		return KindDiamond, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// SitesFor derives N from the cell count: 2·cells (NRSSH) or 3·cells+1 (Diamond).
//
// Errors:
//   - ErrBadCells (cells < 1), ErrUnknownKind.
func SitesFor(kind Kind, cells int) (int, error) {
	if cells < 1 {
		return 0, ErrBadCells
	}
	switch kind {
	case KindNRSSH:
		return 2 * cells, nil
	case KindDiamond:
		return 3*cells + 1, nil
	default:
		return 0, ErrUnknownKind
	}
}

// ValidateSites checks a site count against the topology's modulus
// constraint. Sites are always derived from the cell count inside this
// package; the check guards counts that arrive from elsewhere.
//
// Errors:
//   - ErrSiteCount, ErrUnknownKind.
func ValidateSites(kind Kind, n int) error {
	switch kind {
	case KindNRSSH:
		if n < 2 || n%2 != 0 {
			return fmt.Errorf("nrssh N=%d: %w", n, ErrSiteCount)
		}
	case KindDiamond:
		if n < 4 || n%3 != 1 {
			return fmt.Errorf("diamond N=%d: %w", n, ErrSiteCount)
		}
	default:
		return ErrUnknownKind
	}

	return nil
}
