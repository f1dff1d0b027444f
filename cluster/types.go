// Package cluster defines the cluster/entrance arena types, configuration
// options and sentinel errors for grid partitioning.
package cluster

import (
	"errors"
	"math"

	"github.com/katalvlaran/hpath/grid"
)

// Sentinel errors for cluster generation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Build.
	ErrNilGrid = errors.New("cluster: grid is nil")

	// ErrBadClusterSize indicates a cluster edge length below 2.
	ErrBadClusterSize = errors.New("cluster: cluster size must be at least 2")

	// ErrBadEntranceWidth indicates width bounds violating 1 ≤ min ≤ max.
	ErrBadEntranceWidth = errors.New("cluster: entrance width bounds must satisfy 1 ≤ min ≤ max")

	// ErrBadMergeThreshold indicates a negative merge threshold.
	ErrBadMergeThreshold = errors.New("cluster: merge threshold must be non-negative")
)

// ClusterID indexes a Cluster inside a Set's arena.
type ClusterID int

// EntranceID indexes an Entrance inside a Set's arena.
type EntranceID int

// Kind classifies a cluster's provenance and position.
type Kind uint8

const (
	// Interior clusters touch no outer grid edge.
	Interior Kind = iota

	// Border clusters touch at least one outer grid edge.
	Border

	// Merged clusters are the union of two retired input clusters.
	Merged
)

// Cluster is one rectangular partition of the grid. Created once per Build
// and immutable afterward; a changed grid means a wholesale rebuild, never
// incremental repair.
type Cluster struct {
	ID            ClusterID
	X, Y          int // origin cell (top-left)
	Width, Height int // extent in cells, clipped to the grid
	Kind          Kind
	WalkableCells int          // always ≥ 1 for a retained cluster
	Entrances     []EntranceID // entrances touching this cluster
	Neighbors     []ClusterID  // grid-adjacent clusters
}

// Contains reports whether p lies inside the cluster rectangle.
func (c *Cluster) Contains(p grid.Point) bool {
	return p.X >= c.X && p.X < c.X+c.Width && p.Y >= c.Y && p.Y < c.Y+c.Height
}

// Center returns the geometric center cell of the rectangle
// (floor midpoint on each axis, so it is deterministic for even extents).
func (c *Cluster) Center() grid.Point {
	return grid.Point{X: c.X + (c.Width-1)/2, Y: c.Y + (c.Height-1)/2}
}

// area returns the rectangle's cell count.
func (c *Cluster) area() int { return c.Width * c.Height }

// Entrance is one maximal walkable run on the shared border of two adjacent
// clusters. At anchors the run's first cell (grid order) on the side of the
// lower-ID cluster, so both owners agree on one canonical point.
type Entrance struct {
	ID           EntranceID
	At           grid.Point
	Clusters     [2]ClusterID // lower ID first; always mutually adjacent
	OnGridBorder bool         // the run touches the grid's outer edge
	Cost         float64      // traversal cost: the run length in cells
}

// Other returns the connected cluster that is not `from`.
func (e *Entrance) Other(from ClusterID) ClusterID {
	if e.Clusters[0] == from {
		return e.Clusters[1]
	}

	return e.Clusters[0]
}

// Set is the arena produced by Build: clusters and entrances indexed by
// their small-integer IDs (Clusters[id].ID == id, likewise for entrances).
// A Set is immutable once returned.
type Set struct {
	Clusters  []Cluster
	Entrances []Entrance

	// crossings records adjacent pairs whose shared border has at least one
	// mutually walkable cell pair — even when no run qualified as an
	// entrance by width. Keys hold the lower ID first.
	crossings map[[2]ClusterID]bool
}

// Crossable reports whether the shared border of two adjacent clusters has
// at least one walkable crossing, qualifying entrance or not. Non-adjacent
// pairs are never crossable.
func (s *Set) Crossable(a, b ClusterID) bool {
	if a > b {
		a, b = b, a
	}

	return s.crossings[[2]ClusterID{a, b}]
}

// markCrossing records a walkable crossing between two adjacent clusters.
func (s *Set) markCrossing(a, b ClusterID) {
	if a > b {
		a, b = b, a
	}
	if s.crossings == nil {
		s.crossings = make(map[[2]ClusterID]bool)
	}
	s.crossings[[2]ClusterID{a, b}] = true
}

// ClusterAt returns the cluster containing p, if any. Retained clusters
// never overlap, so the first hit is the only hit.
// Complexity: O(C).
func (s *Set) ClusterAt(p grid.Point) (ClusterID, bool) {
	for i := range s.Clusters {
		if s.Clusters[i].Contains(p) {
			return s.Clusters[i].ID, true
		}
	}

	return 0, false
}

// Adjacent reports whether clusters a and b are grid-adjacent.
// Complexity: O(len(Neighbors)).
func (s *Set) Adjacent(a, b ClusterID) bool {
	if int(a) >= len(s.Clusters) || int(b) >= len(s.Clusters) || a < 0 || b < 0 {
		return false
	}
	for _, n := range s.Clusters[a].Neighbors {
		if n == b {
			return true
		}
	}

	return false
}

// Options configures cluster generation.
//
// ClusterSize      – cluster edge length in cells (default 10, minimum 2).
// MergeThreshold   – clusters with fewer walkable cells are merged into an
//
//	aligned neighbor; 0 disables the merge pass (default).
//
// MinEntranceWidth – shortest qualifying border run (default 1).
// MaxEntranceWidth – longest qualifying border run (unbounded by default);
//
//	longer runs are discarded whole, never split.
type Options struct {
	ClusterSize      int
	MergeThreshold   int
	MinEntranceWidth int
	MaxEntranceWidth int
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithClusterSize sets the cluster edge length in cells.
// Must be ≥ 2; smaller values panic with ErrBadClusterSize.
func WithClusterSize(k int) Option {
	return func(o *Options) {
		if k < 2 {
			panic(ErrBadClusterSize.Error())
		}
		o.ClusterSize = k
	}
}

// WithMergeThreshold enables the merge pass: clusters with fewer walkable
// cells than n are folded into their best-scoring aligned neighbor.
// Negative values panic with ErrBadMergeThreshold; 0 disables merging.
func WithMergeThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMergeThreshold.Error())
		}
		o.MergeThreshold = n
	}
}

// WithEntranceWidths bounds the qualifying border-run lengths.
// Must satisfy 1 ≤ min ≤ max; violations panic with ErrBadEntranceWidth.
func WithEntranceWidths(min, max int) Option {
	return func(o *Options) {
		if min < 1 || max < min {
			panic(ErrBadEntranceWidth.Error())
		}
		o.MinEntranceWidth = min
		o.MaxEntranceWidth = max
	}
}

// DefaultOptions returns Options with sensible defaults:
// 10-cell clusters, merge pass off, entrance runs of any length ≥ 1.
func DefaultOptions() Options {
	return Options{
		ClusterSize:      10,
		MergeThreshold:   0,
		MinEntranceWidth: 1,
		MaxEntranceWidth: math.MaxInt,
	}
}
