package refine

import (
	"fmt"

	"github.com/katalvlaran/hpath/astar"
	"github.com/katalvlaran/hpath/grid"
)

// Refine expands the coarse waypoint route into one continuous cell path by
// invoking the point-to-point collaborator between consecutive waypoints.
// The duplicated junction point between consecutive segments is dropped, so
// the result never holds duplicate consecutive points. Consecutive duplicate
// waypoints in the input are skipped before searching (no zero-length
// segments).
//
// Failure semantics: if any sub-path search fails, Refine fails whole with
// ErrSegment naming the segment — there is no partial-path fallback.
//
// Returns the cell path (first element = first waypoint, last element =
// last waypoint) and the summed movement cost.
func Refine(g *grid.Grid, route []grid.Point, search astar.Searcher) ([]grid.Point, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGrid
	}
	if search == nil {
		return nil, 0, ErrNilSearcher
	}
	if len(route) == 0 {
		return nil, 0, ErrEmptyRoute
	}

	// Drop consecutive duplicates so no segment searches a point to itself.
	// Filtered into a fresh slice: the caller's route is never written to.
	waypoints := make([]grid.Point, 1, len(route))
	waypoints[0] = route[0]
	for _, p := range route[1:] {
		if !p.Equal(waypoints[len(waypoints)-1]) {
			waypoints = append(waypoints, p)
		}
	}

	if len(waypoints) == 1 {
		return []grid.Point{waypoints[0]}, 0, nil
	}

	var (
		path []grid.Point
		cost float64
	)
	for i := 0; i+1 < len(waypoints); i++ {
		sub, c, err := search(g, waypoints[i], waypoints[i+1])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: segment %d (%s → %s): %v",
				ErrSegment, i, waypoints[i], waypoints[i+1], err)
		}

		if i == 0 {
			path = append(path, sub...)
		} else {
			// sub[0] duplicates the junction already at the tail of path.
			path = append(path, sub[1:]...)
		}
		cost += c
	}

	return path, cost, nil
}
