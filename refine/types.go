// Package refine defines options and sentinel errors for route refinement
// and waypoint smoothing.
package refine

import (
	"errors"

	"github.com/katalvlaran/hpath/grid"
)

// Sentinel errors for refinement and smoothing.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("refine: grid is nil")

	// ErrNilSearcher indicates that a nil collaborator was passed to Refine.
	ErrNilSearcher = errors.New("refine: searcher is nil")

	// ErrEmptyRoute indicates a route with no waypoints.
	ErrEmptyRoute = errors.New("refine: route has no waypoints")

	// ErrSegment indicates that one waypoint-to-waypoint sub-search failed;
	// refinement fails whole, with no partial-path fallback.
	ErrSegment = errors.New("refine: segment search failed")

	// ErrBadFactor indicates a smoothing factor outside [0, 1].
	ErrBadFactor = errors.New("refine: smoothing factor must be within [0, 1]")
)

// Options configures the smoothing pass.
//
// Factor – probability of dropping an eligible interior waypoint, in [0, 1]
//
//	(default 0.5). 0 keeps every waypoint; 1 drops every eligible one.
//
// Seed   – RNG seed; 0 selects a fixed default so results stay reproducible
//
//	(same policy as every seeded component in this module).
//
// Conn   – connectivity of the occlusion test: under Conn4 diagonal line
//
//	steps are expanded into two cardinal steps.
type Options struct {
	Factor float64
	Seed   int64
	Conn   grid.Connectivity
}

// Option represents a functional option for configuring Smooth.
type Option func(*Options)

// WithFactor sets the smoothing strength.
// Must lie in [0, 1]; values outside panic with ErrBadFactor.
func WithFactor(f float64) Option {
	return func(o *Options) {
		if f < 0 || f > 1 {
			panic(ErrBadFactor.Error())
		}
		o.Factor = f
	}
}

// WithSeed fixes the RNG seed; 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithConnectivity selects the occlusion-test connectivity.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// DefaultOptions returns Options with sensible defaults:
// factor 0.5, default seed, Conn4 occlusion.
func DefaultOptions() Options {
	return Options{
		Factor: 0.5,
		Seed:   0,
		Conn:   grid.Conn4,
	}
}
