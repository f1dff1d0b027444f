// Package cluster partitions a grid into rectangular clusters and detects
// the entrances (walkable border runs) that connect adjacent clusters. Its
// output — an integer-indexed arena of clusters and entrances — is the sole
// input of the abstract graph builder.
//
// What:
//
//   - Build tiles the grid at a configured stride, clipping trailing tiles
//     to the grid extent and dropping tiles with zero walkable cells.
//   - Each retained cluster is classified Interior or Border (touching the
//     grid's outer edge); the classification is informational only.
//   - An optional single merge pass folds undersized clusters into their
//     best-scoring aligned neighbor (Kind becomes Merged).
//   - For every grid-adjacent cluster pair, the shared border is scanned in
//     grid order for maximal runs of mutually walkable cell pairs; each run
//     within the configured width range becomes one Entrance with cost equal
//     to the run length.
//
// Why:
//
//   - Clusters are the unit of abstraction for hierarchical planning: the
//     coarse search sees one node per cluster instead of thousands of cells.
//
// Invariants:
//
//   - Every retained cluster has ≥ 1 walkable cell; a grid with no walkable
//     cells yields a Set with zero clusters (not an error).
//   - Every Entrance connects exactly two mutually adjacent clusters and
//     appears in exactly those two clusters' entrance lists.
//   - Two adjacent clusters with no qualifying run simply share no entrance;
//     this is a common, valid outcome.
//
// Complexity:
//
//   - Tiling + classification: O(W×H).
//   - Neighbor discovery:      O(C²) over cluster rectangles (C is small:
//     ceil(W/k)×ceil(H/k)).
//   - Entrance detection:      O(border cells) per adjacent pair.
//
// Errors:
//
//   - ErrNilGrid: Build received a nil grid.
//   - ErrBadClusterSize / ErrBadEntranceWidth / ErrBadMergeThreshold:
//     option constructors panic with these on invalid configuration.
package cluster
