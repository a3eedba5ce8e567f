// Package gridgraph treats a 2D grid of integer labels as a graph, enabling
// region and boundary analysis of categorical maps such as phase diagrams.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of labels.
//   - ConnectedComponents partitions it into maximal equal-label regions.
//   - BoundaryCells finds cells adjacent to a different label.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - BoundaryCells:       O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: a coordinate lies outside the grid.
package gridgraph
