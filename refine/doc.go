// Package refine expands a coarse waypoint route into a concrete,
// cell-by-cell path, and optionally thins redundant waypoints afterwards.
//
// What:
//
//   - Refine stitches consecutive waypoints with the low-level point-to-
//     point search (the astar.Searcher collaborator), concatenating the
//     sub-paths and dropping the duplicated junction point between
//     consecutive segments. If any sub-path search fails, the whole
//     refinement fails — there is no partial-path fallback.
//   - Smooth makes one pass over interior waypoints: when an unobstructed
//     straight line (cell-by-cell occlusion test) connects a waypoint's
//     predecessor to its successor, the waypoint is probabilistically
//     dropped and the gap re-stitched with the line's cells, so the output
//     stays grid-adjacent and walkable throughout. Endpoints are never
//     dropped.
//
// Why:
//
//   - The abstract route only names anchors; cell fidelity is restored
//     here, and smoothing trades path quality for fewer points at a
//     configurable strength.
//
// Determinism:
//
//   - Smoothing draws from a seeded deterministic RNG (seed 0 selects a
//     fixed default): same seed ⇒ identical results across platforms; a
//     factor of 0 disables dropping entirely.
//
// Complexity:
//
//   - Refine: Σ cost of the collaborator searches, plus O(path) stitching.
//   - Smooth: O(path × line length) worst case.
//
// Errors:
//
//   - ErrNilGrid / ErrNilSearcher / ErrEmptyRoute: invalid inputs.
//   - ErrSegment: a sub-path search failed; the wrapped error names the
//     failing segment.
package refine
