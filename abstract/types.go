// Package abstract defines the coarse-graph types, options and sentinel
// errors shared by the builder and the pathfinder.
package abstract

import (
	"errors"
	"math"

	"github.com/katalvlaran/hpath/cluster"
	"github.com/katalvlaran/hpath/grid"
)

// Sentinel errors for graph construction and search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Build.
	ErrNilGrid = errors.New("abstract: grid is nil")

	// ErrNilSet indicates that a nil *cluster.Set was passed to Build.
	ErrNilSet = errors.New("abstract: cluster set is nil")

	// ErrNilGraph indicates that a nil *Graph was passed to FindRoute.
	ErrNilGraph = errors.New("abstract: graph is nil")

	// ErrClusterNotFound indicates a queried cluster with no graph node.
	ErrClusterNotFound = errors.New("abstract: cluster has no node in graph")

	// ErrNoRoute indicates no abstract route exists between the clusters,
	// including the case where the iteration budget ran out first.
	ErrNoRoute = errors.New("abstract: no route between clusters")

	// ErrBadEdgeCost indicates a non-positive edge cost ceiling option.
	ErrBadEdgeCost = errors.New("abstract: edge cost ceiling must be positive")

	// ErrBadIterations indicates a non-positive iteration budget option.
	ErrBadIterations = errors.New("abstract: iteration budget must be positive")
)

// NodeID indexes a Node inside a Graph's arena.
type NodeID int

// NodeKind tags the two node variants of the coarse graph.
type NodeKind uint8

const (
	// ClusterNode is anchored at a cluster's center.
	ClusterNode NodeKind = iota

	// EntranceNode is anchored at an entrance's representative point.
	EntranceNode
)

// Node is one vertex of the coarse graph: a tagged union over the cluster
// and entrance variants. Only the field matching Kind is meaningful; search
// code operates on the common (ID, At) projection and never inspects the
// variant fields.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	At       grid.Point
	Cluster  cluster.ClusterID  // valid when Kind == ClusterNode
	Entrance cluster.EntranceID // valid when Kind == EntranceNode
}

// Edge is one directed connection of the coarse graph. Build inserts every
// logical connection in both directions. Cost is never less than the
// Euclidean distance between the endpoints' positions — the invariant that
// keeps the straight-line search heuristic admissible.
type Edge struct {
	From, To  NodeID
	Cost      float64
	Waypoints []grid.Point // coarse path; refinement fills in the interior
}

// Graph is the immutable coarse graph: node and edge arenas plus an
// adjacency index. Construct with Build; never mutate afterwards.
type Graph struct {
	Nodes []Node
	Edges []Edge

	adj          [][]int32 // NodeID → indices into Edges (outgoing)
	clusterNodes []NodeID  // ClusterID → its cluster node
}

// ClusterNode returns the node anchoring the given cluster.
func (g *Graph) ClusterNode(c cluster.ClusterID) (NodeID, bool) {
	if c < 0 || int(c) >= len(g.clusterNodes) {
		return 0, false
	}

	return g.clusterNodes[c], true
}

// Route is the result of one FindRoute call: the ordered node sequence from
// the start cluster's node to the goal cluster's node, its accumulated cost,
// and the number of search iterations spent.
type Route struct {
	Nodes      []NodeID
	Cost       float64
	Iterations int
}

// Options configures graph construction and search.
//
// MaxEdgeCost   – edges costlier than this are discarded at Build time to
//
//	bound abstract-graph density. Default +Inf (keep all).
//
// MaxIterations – cap on FindRoute open-set pops; exhaustion reports
//
//	ErrNoRoute. Default math.MaxInt (no cap).
type Options struct {
	MaxEdgeCost   float64
	MaxIterations int
}

// Option represents a functional option for Build and FindRoute.
type Option func(*Options)

// WithMaxEdgeCost sets the edge cost ceiling applied at Build time.
// Must be positive; non-positive values panic with ErrBadEdgeCost.
func WithMaxEdgeCost(ceiling float64) Option {
	return func(o *Options) {
		if ceiling <= 0 {
			panic(ErrBadEdgeCost.Error())
		}
		o.MaxEdgeCost = ceiling
	}
}

// WithMaxIterations caps the number of search iterations.
// Must be positive; non-positive values panic with ErrBadIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns Options with sensible defaults:
// no edge cost ceiling, no iteration cap.
func DefaultOptions() Options {
	return Options{
		MaxEdgeCost:   math.Inf(1),
		MaxIterations: math.MaxInt,
	}
}
