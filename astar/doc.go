// Package astar implements point-to-point best-first search over a raw cell
// grid. It is the low-level worker the refinement stage calls to stitch two
// nearby waypoints together; it knows nothing about clusters or the abstract
// graph.
//
// What:
//
//   - FindPath runs A* between two walkable points and returns the cell
//     sequence (endpoints included) plus its movement cost.
//   - NewSearcher binds options once and returns a Searcher closure matching
//     the collaborator contract consumed by refine.
//   - Moves are 4- or 8-directional; diagonal moves never cut corners (both
//     flanking cardinal cells must be walkable).
//
// Why:
//
//   - Hierarchical planning only needs "two points in, cell path or failure
//     out" from its low-level search, so the surface here is a single
//     function — the abstract machinery lives elsewhere.
//
// Complexity:
//
//   - Time:  O(N log N) with N = cells touched (each pop/push costs O(log N);
//     lazy decrease-key pushes duplicates and skips stale pops).
//   - Space: O(W×H) for the g-score, parent and state arenas, allocated per
//     call so concurrent searches over one shared Grid are safe.
//
// Heuristic:
//
//   - Conn4: Manhattan distance × cardinal cost.
//   - Conn8: octile distance using the configured cardinal/diagonal costs.
//     Both never overestimate, so returned paths are optimal.
//
// Errors:
//
//   - ErrNilGrid: the grid pointer is nil.
//   - ErrOutOfBounds: an endpoint lies outside the grid.
//   - ErrBlocked: an endpoint sits on a non-walkable cell.
//   - ErrNoPath: the open set drained (or the iteration budget ran out)
//     before the goal was reached.
package astar
