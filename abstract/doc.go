// Package abstract builds the coarse weighted graph over clusters and
// entrances, and runs the best-first search that plans routes on it.
//
// What:
//
//   - Build turns a cluster.Set into an immutable Graph: one node per
//     cluster (anchored at the cluster's center, snapped to its nearest
//     walkable cell) and one node per entrance (anchored at the entrance
//     point), connected by four edge kinds:
//     – intra-cluster:  cluster node ↔ each of its entrance nodes
//     – inter-cluster:  entrance ↔ entrance sharing a connecting cluster
//     – same-cluster:   entrance pairs inside one cluster (a special case
//     of the above — sharing works both across and within)
//     – direct shortcut: cluster ↔ cluster for grid-adjacent clusters,
//     kept even when no entrance qualified
//   - Every edge cost is the Euclidean distance between its endpoints'
//     positions, so the straight-line search heuristic never overestimates.
//   - Edges costlier than the configured ceiling are discarded to bound
//     graph density.
//   - FindRoute runs A* from one cluster's node to another's over the graph.
//
// Why:
//
//   - The abstract graph has tens of nodes where the raw grid has thousands
//     of cells; coarse planning here makes long queries cheap, and the
//     refinement stage restores cell-level fidelity afterwards.
//
// Topology vs. scratch:
//
//   - Graph is read-only after Build. All per-search bookkeeping (g/f costs,
//     open/closed membership, predecessors) lives in arrays allocated per
//     FindRoute call and indexed by NodeID, so concurrent searches over one
//     shared Graph are safe and no state bleeds between calls.
//
// Complexity:
//
//   - Build:     O(C·k² + E_in²  + C²) — anchor snapping, entrance pairing,
//     shortcut discovery (all small: C clusters, E_in entrances).
//   - FindRoute: O((V + E) log V) with per-call O(V) scratch.
//
// Errors:
//
//   - ErrNilGrid / ErrNilSet / ErrNilGraph: nil inputs.
//   - ErrClusterNotFound: a queried cluster has no node in the graph.
//   - ErrNoRoute: the open set drained or the iteration budget ran out —
//     reported identically because both mean "no route at this effort".
package abstract
