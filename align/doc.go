// Package align compares evolution trajectories with Dynamic Time Warping.
//
// Profiles and Series compute the DTW distance between two sequences,
// optionally inside a Sakoe–Chiba band, with a slope penalty for
// non-diagonal steps, and with the optimal warping path (FullMatrix mode)
// or in O(m) memory (RollingArray mode).
//
// Trajectories applies it to intensity frames: it measures how far a
// trajectory reconstructed by evolve.Backtrack drifts from the forward
// evolution over the same time span. A frozen-Hamiltonian reconstruction of
// a nonlinear run is approximate, and the report quantifies by how much.
package align
