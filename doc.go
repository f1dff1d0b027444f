// Package hpath is a two-level (hierarchical) route planner for uniform
// grids — cluster the map, plan coarse, refine to cells.
//
// 🚀 What is hpath?
//
//	A modern library that plans long grid routes in two stages:
//		• Partition the grid into rectangular clusters
//		• Detect entrances (walkable runs on shared cluster borders)
//		• Build a small weighted abstract graph over clusters & entrances
//		• A* over the abstract graph for a coarse route
//		• Refine the coarse route into a concrete, cell-by-cell path
//
// ✨ Why choose hpath?
//
//   - Scales – the abstract graph is tiny next to the raw grid, so long
//     queries stay fast while short ones stay exact
//   - Deterministic – stable tie-breaking, seeded smoothing, no hidden RNG
//   - Predictable – sentinel errors distinguish bad input, "no route", and
//     refinement failure; nothing panics at query time
//   - Pure Go library core – third-party deps live at the orchestration edge
//     (bounded LRU cache, content hashing) and in cmd/
//
// Under the hood, everything is organized in topic subpackages:
//
//	grid/     — immutable cell grid: classifications, points, connectivity
//	astar/    — low-level point-to-point grid search (the refinement worker)
//	cluster/  — cluster generation, merge pass & entrance detection
//	abstract/ — abstract graph construction + coarse A* search
//	refine/   — route refinement & line-of-sight smoothing
//	planner/  — the orchestrator: FindPath, result cache, statistics
//	gridio/   — compressed .grid.zst map file codec
//
// Quick ASCII example (4 clusters, k=2, E marks an entrance run):
//
//	    ┌──┬──┐
//	    │..│..│
//	    ├E─┼──┤
//	    │..E..│
//	    └──┴──┘
//
// Start with planner.New and planner.FindPath; everything else is reachable
// from there. Dive into examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/hpath
package hpath
