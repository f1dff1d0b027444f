// Package grid models the uniform cell grid every hpath stage operates on.
//
// What:
//
//   - Grid wraps a rectangular field of Cell classifications, deep-copied at
//     construction and immutable afterwards.
//   - Point is an integer (X, Y) coordinate with value semantics.
//   - Connectivity selects 4- or 8-directional adjacency; Offsets returns the
//     precomputed neighbor table for either.
//   - Parse builds a Grid from ASCII rows ('.', '#', 'S', 'G') for tests,
//     tools and map files.
//
// Why:
//
//   - Every downstream stage (clustering, entrance detection, search,
//     refinement) needs one shared, read-only view of walkability; copying
//     once here keeps the caller free to mutate its own buffer.
//
// Complexity:
//
//   - New/Parse:        O(W×H) time and memory (one deep copy).
//   - At/WalkableAt:    O(1).
//   - Index/Coordinate: O(1) row-major conversions.
//   - Snapshot:         O(W×H) (stable bytes for content hashing).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: Parse met a rune outside the legend.
package grid
