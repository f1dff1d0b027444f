// Package planner is the public entry point of hpath: it sequences
// clustering, abstract planning and refinement behind one FindPath call,
// owns the bounded result cache, and reports per-query statistics.
//
// What:
//
//   - New builds a Planner from functional options (cluster size, movement
//     costs, smoothing, iteration budget, caching).
//   - FindPath validates the query, then runs the pipeline:
//     grid → cluster.Build → abstract.Build → abstract.FindRoute →
//     refine.Refine (→ refine.Smooth) → Result.
//   - Results carry the refined path, its cost and length, the abstract
//     node sequence for diagnostics, and a statistics block (cluster and
//     entrance counts, graph size, iterations, timings, query UUID).
//
// Error taxonomy (all recoverable at the caller's level):
//
//   - Input validation — ErrNilGrid / ErrOutOfBounds / ErrBlocked —
//     rejected before any stage runs.
//   - Connectivity — ErrNoAbstractPath — the query was well-formed but no
//     coarse route exists (iteration-budget exhaustion reports the same).
//   - Refinement — ErrRefine — a coarse route exists but a segment's
//     point-to-point search failed.
//
// A failed query leaves the planner exactly as before the call; a
// successful one may add a single cache entry.
//
// Caching:
//
//   - WithCaching(n) enables a bounded LRU of n entries keyed by a content
//     hash of (grid, start, goal, options); hits are reported in
//     Stats.CacheHit and returned as fresh copies so callers own their
//     paths either way.
//
// Concurrency:
//
//   - One FindPath call is the unit of work; the pipeline is single-
//     threaded and synchronous. A Planner does no internal locking —
//     callers either serialize access to one instance or use independent
//     instances (all state is instance-owned).
package planner
