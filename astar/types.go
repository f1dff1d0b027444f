// Package astar defines options and sentinel errors for the low-level grid
// search, plus the Searcher contract consumed by the refinement stage.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/hpath/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates an endpoint outside the grid boundaries.
	ErrOutOfBounds = errors.New("astar: point out of grid bounds")

	// ErrBlocked indicates an endpoint on a non-walkable cell.
	ErrBlocked = errors.New("astar: point is not walkable")

	// ErrNoPath indicates the goal is unreachable from the start, either
	// because the open set drained or the iteration budget ran out.
	ErrNoPath = errors.New("astar: no path between points")

	// ErrBadCost indicates a non-positive movement cost option.
	ErrBadCost = errors.New("astar: movement cost must be positive")

	// ErrBadIterations indicates a non-positive iteration budget option.
	ErrBadIterations = errors.New("astar: iteration budget must be positive")
)

// Searcher is the point-to-point contract the refinement engine consumes:
// given a grid and two points, return a walkable cell sequence (endpoints
// included) with its cost, or an error.
type Searcher func(g *grid.Grid, from, to grid.Point) ([]grid.Point, float64, error)

// Options configures the behavior of FindPath.
//
// Conn          – 4- or 8-directional adjacency (default Conn4).
// CardinalCost  – cost of an orthogonal step (default 1).
// DiagonalCost  – cost of a diagonal step under Conn8 (default √2).
// MaxIterations – cap on open-set pops; exhaustion reports ErrNoPath.
//
//	Default is math.MaxInt (no cap).
type Options struct {
	Conn          grid.Connectivity
	CardinalCost  float64
	DiagonalCost  float64
	MaxIterations int
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithConnectivity selects 4- or 8-directional adjacency.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithCardinalCost sets the orthogonal step cost.
// Must be positive; non-positive values panic with ErrBadCost
// (invalid configuration is a programming error, caught early).
func WithCardinalCost(cost float64) Option {
	return func(o *Options) {
		if cost <= 0 {
			panic(ErrBadCost.Error())
		}
		o.CardinalCost = cost
	}
}

// WithDiagonalCost sets the diagonal step cost used under Conn8.
// Must be positive; non-positive values panic with ErrBadCost.
func WithDiagonalCost(cost float64) Option {
	return func(o *Options) {
		if cost <= 0 {
			panic(ErrBadCost.Error())
		}
		o.DiagonalCost = cost
	}
}

// WithMaxIterations caps the number of open-set pops.
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
// Conn4 adjacency, unit cardinal cost, √2 diagonal cost, no iteration cap.
func DefaultOptions() Options {
	return Options{
		Conn:          grid.Conn4,
		CardinalCost:  1,
		DiagonalCost:  math.Sqrt2,
		MaxIterations: math.MaxInt,
	}
}
