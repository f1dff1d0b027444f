package refine

import (
	"math/rand"

	"github.com/katalvlaran/hpath/grid"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
// math/rand.Rand is not goroutine-safe; Smooth creates one per call.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Smooth makes one pass over the interior waypoints of a refined path.
// For each interior waypoint, if an unobstructed straight line connects the
// last kept point to the waypoint's successor, the waypoint is dropped with
// probability Options.Factor and the gap is re-stitched with the line's
// cells — so the output remains in-bounds, walkable and step-adjacent under
// the configured connectivity. Endpoints are never dropped.
//
// Paths shorter than three points are returned as a copy, untouched.
// Factor 0 disables dropping; any fixed seed makes the pass deterministic.
//
// Complexity: O(len(path) × line length) worst case.
func Smooth(g *grid.Grid, path []grid.Point, opts ...Option) []grid.Point {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil || len(path) < 3 {
		out := make([]grid.Point, len(path))
		copy(out, path)

		return out
	}

	rng := rngFromSeed(cfg.Seed)
	out := make([]grid.Point, 1, len(path))
	out[0] = path[0]

	for k := 1; k < len(path)-1; k++ {
		last := out[len(out)-1]
		if rng.Float64() < cfg.Factor {
			// An immediate backtrack (the path entered path[k] and came
			// straight back) leaves the last kept point already at the
			// successor: drop the waypoint with nothing to splice.
			if last.Equal(path[k+1]) {
				continue
			}
			if cells, ok := lineWalkable(g, last, path[k+1], cfg.Conn); ok {
				// Drop path[k]: splice the line's interior toward the
				// successor; the successor itself is appended on its own
				// turn (or dropped again).
				out = append(out, cells[1:len(cells)-1]...)
				continue
			}
		}
		// Kept waypoints revisited by an earlier backtrack drop would
		// duplicate the last point; skip those.
		if !last.Equal(path[k]) {
			out = append(out, path[k])
		}
	}

	if tail := path[len(path)-1]; !out[len(out)-1].Equal(tail) {
		out = append(out, tail)
	}

	return out
}

// lineWalkable walks the Bresenham line from a to b and reports whether
// every visited cell is walkable. Under Conn4, diagonal line steps are
// expanded into two cardinal steps (x-first, falling back to y-first when
// blocked) so consecutive returned cells are always cardinal neighbors;
// under Conn8 a diagonal step additionally requires both flanking cells
// walkable, matching the search's corner-cut rule.
//
// On success it returns the full cell sequence including both endpoints.
func lineWalkable(g *grid.Grid, a, b grid.Point, conn grid.Connectivity) ([]grid.Point, bool) {
	if !g.WalkableAt(a.X, a.Y) || !g.WalkableAt(b.X, b.Y) {
		return nil, false
	}

	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx := signInt(b.X - a.X)
	sy := signInt(b.Y - a.Y)
	errAcc := dx + dy

	cells := []grid.Point{a}
	cur := a
	for !cur.Equal(b) {
		e2 := 2 * errAcc
		stepX, stepY := 0, 0
		if e2 >= dy {
			errAcc += dy
			stepX = sx
		}
		if e2 <= dx {
			errAcc += dx
			stepY = sy
		}

		if stepX != 0 && stepY != 0 {
			if conn == grid.Conn4 {
				// Expand the diagonal into two cardinal steps.
				mid := grid.Point{X: cur.X + stepX, Y: cur.Y}
				if !g.WalkableAt(mid.X, mid.Y) {
					mid = grid.Point{X: cur.X, Y: cur.Y + stepY}
				}
				if !g.WalkableAt(mid.X, mid.Y) {
					return nil, false
				}
				cells = append(cells, mid)
			} else if !g.WalkableAt(cur.X+stepX, cur.Y) || !g.WalkableAt(cur.X, cur.Y+stepY) {
				return nil, false // corner cut
			}
		}

		cur = grid.Point{X: cur.X + stepX, Y: cur.Y + stepY}
		if !g.WalkableAt(cur.X, cur.Y) {
			return nil, false
		}
		cells = append(cells, cur)
	}

	return cells, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
