// SPDX-License-Identifier: MIT

package align

// MemoryMode controls how the warping matrix is stored.
//
//   - FullMatrix   keeps the entire (n+1)×(m+1) matrix and supports path
//     recovery. Memory O(n·m).
//   - RollingArray keeps two rows only. Memory O(m); no path.
type MemoryMode int

const (
	FullMatrix MemoryMode = iota
	RollingArray
)

// Options configures the warping.
//
// Fields:
//   - Window       maximum |i−j| (Sakoe–Chiba band); 0 disables the band.
//   - SlopePenalty cost added to every non-diagonal step.
//   - ReturnPath   recover the optimal warping path (FullMatrix only).
//   - MemoryMode   FullMatrix or RollingArray.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only setup.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

// Coord is one step (I in the first sequence, J in the second) of a warping path.
type Coord struct {
	I, J int
}
