// Package planner defines the orchestrator's options, result record,
// statistics block and sentinel errors.
package planner

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hpath/abstract"
	"github.com/katalvlaran/hpath/astar"
	"github.com/katalvlaran/hpath/cluster"
	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/refine"
)

// Sentinel errors returned by FindPath, grouped by recovery strategy:
// validation errors mean "fix the input", ErrNoAbstractPath means
// "correctly computed, no route", ErrRefine means "coarse route exists but
// could not be realized" (e.g. retry with a different cluster size).
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = errors.New("planner: point out of grid bounds")

	// ErrBlocked indicates a start or goal on a non-walkable cell.
	ErrBlocked = errors.New("planner: point is not walkable")

	// ErrNoAbstractPath indicates no coarse route exists between the start
	// and goal clusters (including iteration-budget exhaustion).
	ErrNoAbstractPath = errors.New("planner: no abstract path between start and goal")

	// ErrRefine indicates that refinement of an existing coarse route failed.
	ErrRefine = errors.New("planner: route refinement failed")

	// ErrBadCacheSize indicates a non-positive cache capacity option.
	ErrBadCacheSize = errors.New("planner: cache size must be positive")
)

// Options configures a Planner. Zero values are filled by DefaultOptions;
// option constructors panic on invalid arguments (a misconfigured planner
// is a programming error, caught at construction).
type Options struct {
	ClusterSize      int     // cluster edge length in cells
	MergeThreshold   int     // 0 disables the merge pass
	MinEntranceWidth int     // shortest qualifying entrance run
	MaxEntranceWidth int     // longest qualifying entrance run
	AllowDiagonal    bool    // 8-directional movement
	CardinalCost     float64 // orthogonal step cost
	DiagonalCost     float64 // diagonal step cost (used when AllowDiagonal)
	UsePathSmoothing bool    // run the smoothing pass after refinement
	SmoothingFactor  float64 // probability of dropping an eligible waypoint
	Seed             int64   // smoothing RNG seed; 0 = fixed default
	MaxIterations    int     // abstract-search iteration ceiling
	MaxEdgeCost      float64 // abstract edge cost ceiling (+Inf = keep all)
	CacheSize        int     // LRU entries; 0 disables caching
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithClusterSize sets the cluster edge length in cells (minimum 2).
func WithClusterSize(k int) Option {
	return func(o *Options) {
		if k < 2 {
			panic(cluster.ErrBadClusterSize.Error())
		}
		o.ClusterSize = k
	}
}

// WithMergeThreshold enables the undersized-cluster merge pass.
func WithMergeThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(cluster.ErrBadMergeThreshold.Error())
		}
		o.MergeThreshold = n
	}
}

// WithEntranceWidths bounds qualifying entrance runs (1 ≤ min ≤ max).
func WithEntranceWidths(min, max int) Option {
	return func(o *Options) {
		if min < 1 || max < min {
			panic(cluster.ErrBadEntranceWidth.Error())
		}
		o.MinEntranceWidth = min
		o.MaxEntranceWidth = max
	}
}

// WithDiagonal enables 8-directional adjacency with a √2 diagonal cost
// (override via WithDiagonalCost).
func WithDiagonal() Option {
	return func(o *Options) { o.AllowDiagonal = true }
}

// WithCardinalCost sets the orthogonal step cost (must be positive).
func WithCardinalCost(cost float64) Option {
	return func(o *Options) {
		if cost <= 0 {
			panic(astar.ErrBadCost.Error())
		}
		o.CardinalCost = cost
	}
}

// WithDiagonalCost sets the diagonal step cost (must be positive).
func WithDiagonalCost(cost float64) Option {
	return func(o *Options) {
		if cost <= 0 {
			panic(astar.ErrBadCost.Error())
		}
		o.DiagonalCost = cost
	}
}

// WithSmoothing enables the post-refinement smoothing pass with the given
// drop probability in [0, 1].
func WithSmoothing(factor float64) Option {
	return func(o *Options) {
		if factor < 0 || factor > 1 {
			panic(refine.ErrBadFactor.Error())
		}
		o.UsePathSmoothing = true
		o.SmoothingFactor = factor
	}
}

// WithSeed fixes the smoothing RNG seed; 0 selects the fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxIterations caps the abstract search (must be positive).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(abstract.ErrBadIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithMaxEdgeCost discards abstract edges costlier than the ceiling.
func WithMaxEdgeCost(ceiling float64) Option {
	return func(o *Options) {
		if ceiling <= 0 {
			panic(abstract.ErrBadEdgeCost.Error())
		}
		o.MaxEdgeCost = ceiling
	}
}

// WithCaching enables the bounded LRU result cache with n entries.
func WithCaching(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadCacheSize.Error())
		}
		o.CacheSize = n
	}
}

// DefaultOptions returns Options with sensible defaults:
// 10-cell clusters, no merging, any entrance run width, 4-directional
// unit-cost movement (√2 diagonals once enabled), smoothing off,
// 10 000-iteration abstract budget, no edge ceiling, caching off.
func DefaultOptions() Options {
	return Options{
		ClusterSize:      10,
		MergeThreshold:   0,
		MinEntranceWidth: 1,
		MaxEntranceWidth: math.MaxInt,
		AllowDiagonal:    false,
		CardinalCost:     1,
		DiagonalCost:     math.Sqrt2,
		UsePathSmoothing: false,
		SmoothingFactor:  0.5,
		Seed:             0,
		MaxIterations:    10_000,
		MaxEdgeCost:      math.Inf(1),
		CacheSize:        0,
	}
}

// Stats is the per-query statistics block carried by every Result,
// successful or not.
type Stats struct {
	QueryID       uuid.UUID     // diagnostics correlation ID, fresh per call
	Clusters      int           // clusters created
	Entrances     int           // entrances found
	AbstractNodes int           // coarse graph size
	AbstractEdges int           // directed edge count
	Iterations    int           // abstract-search iterations spent
	RefineTime    time.Duration // refinement (+ smoothing) wall time
	TotalTime     time.Duration // whole FindPath wall time
	Err           string        // failure message, empty on success
	CacheHit      bool          // result served from the LRU cache
}

// Result is the outcome of one FindPath call. Path and Route are owned by
// the caller on return (cache hits hand out fresh copies).
type Result struct {
	Found  bool
	Path   []grid.Point      // start first, goal last; empty on failure
	Cost   float64           // total movement cost of Path
	Length int               // len(Path)
	Route  []abstract.NodeID // coarse node sequence, for diagnostics
	Stats  Stats
}
