package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hpath/grid"
)

// Cell states tracked in the per-search scratch arena.
const (
	stateUnseen uint8 = iota
	stateOpen
	stateClosed
)

// FindPath computes the cheapest walkable path from `from` to `to` on g.
// It returns the ordered cell sequence including both endpoints, the total
// movement cost, or an error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Both endpoints must be in bounds (ErrOutOfBounds).
//  3. Both endpoints must be walkable (ErrBlocked).
//
// from == to short-circuits to ([from], 0, nil) with no search performed.
//
// Complexity:
//
//   - Time:  O(N log N), N = cells touched.
//   - Space: O(W×H) scratch, allocated per call.
func FindPath(g *grid.Grid, from, to grid.Point, opts ...Option) ([]grid.Point, float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return nil, 0, ErrNilGrid
	}

	// 3) Validate endpoints are inside the grid.
	if !g.InBounds(from.X, from.Y) {
		return nil, 0, fmt.Errorf("%w: start %s", ErrOutOfBounds, from)
	}
	if !g.InBounds(to.X, to.Y) {
		return nil, 0, fmt.Errorf("%w: goal %s", ErrOutOfBounds, to)
	}

	// 4) Validate endpoints are walkable.
	if !g.WalkableAt(from.X, from.Y) {
		return nil, 0, fmt.Errorf("%w: start %s", ErrBlocked, from)
	}
	if !g.WalkableAt(to.X, to.Y) {
		return nil, 0, fmt.Errorf("%w: goal %s", ErrBlocked, to)
	}

	// 5) Trivial query: nothing to search.
	if from.Equal(to) {
		return []grid.Point{from}, 0, nil
	}

	// 6) Run the search.
	r := newRunner(g, cfg, to)
	return r.process(from)
}

// NewSearcher binds options once and returns a Searcher closure.
// The closure is stateless between calls; one Searcher may serve concurrent
// refinements over read-only grids.
func NewSearcher(opts ...Option) Searcher {
	return func(g *grid.Grid, from, to grid.Point) ([]grid.Point, float64, error) {
		return FindPath(g, from, to, opts...)
	}
}

// runner holds the mutable state for a single FindPath execution.
// All per-cell bookkeeping lives in flat arenas indexed by row-major cell
// index; the Grid itself is read-only throughout.
type runner struct {
	g    *grid.Grid
	cfg  Options
	goal grid.Point

	gScore []float64 // cell index → best-known cost from start
	came   []int32   // cell index → predecessor cell index (-1 = none)
	state  []uint8   // cell index → stateUnseen/stateOpen/stateClosed
	pq     cellPQ    // open set ordered by f, tie-broken on larger g
}

// newRunner allocates the scratch arenas sized to the grid.
func newRunner(g *grid.Grid, cfg Options, goal grid.Point) *runner {
	n := g.Size()
	came := make([]int32, n)
	for i := range came {
		came[i] = -1
	}

	return &runner{
		g:      g,
		cfg:    cfg,
		goal:   goal,
		gScore: make([]float64, n),
		came:   came,
		state:  make([]uint8, n),
		pq:     make(cellPQ, 0, 64),
	}
}

// process is the core A* loop: pop the lowest-f open cell, finalize it,
// relax its neighbors, repeat until the goal is finalized or the frontier
// drains or the iteration budget is spent.
func (r *runner) process(from grid.Point) ([]grid.Point, float64, error) {
	start := int32(r.g.Index(from.X, from.Y))
	goal := int32(r.g.Index(r.goal.X, r.goal.Y))

	heap.Init(&r.pq)
	r.gScore[start] = 0
	r.state[start] = stateOpen
	heap.Push(&r.pq, cellItem{idx: start, g: 0, f: r.heuristic(from.X, from.Y)})

	iterations := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		u := item.idx

		// Skip stale heap entries (lazy decrease-key).
		if r.state[u] == stateClosed {
			continue
		}
		r.state[u] = stateClosed

		iterations++
		if iterations > r.cfg.MaxIterations {
			return nil, 0, fmt.Errorf("%w: iteration budget %d exhausted", ErrNoPath, r.cfg.MaxIterations)
		}

		// Goal popped ⇒ its g-score is final; reconstruct and return.
		if u == goal {
			return r.reconstruct(start, goal), r.gScore[goal], nil
		}

		r.relax(u)
	}

	return nil, 0, fmt.Errorf("%w: %s → %s", ErrNoPath, from, r.goal)
}

// relax examines every neighbor of cell u and records strictly better routes.
// Diagonal steps additionally require both flanking cardinal cells walkable,
// so paths never cut corners around obstacles.
func (r *runner) relax(u int32) {
	ux, uy := r.g.Coordinate(int(u))
	for _, d := range grid.Offsets(r.cfg.Conn) {
		vx, vy := ux+d[0], uy+d[1]
		if !r.g.WalkableAt(vx, vy) {
			continue
		}

		step := r.cfg.CardinalCost
		if grid.Diagonal(d[0], d[1]) {
			if !r.g.WalkableAt(ux+d[0], uy) || !r.g.WalkableAt(ux, uy+d[1]) {
				continue // corner cut
			}
			step = r.cfg.DiagonalCost
		}

		v := int32(r.g.Index(vx, vy))
		if r.state[v] == stateClosed {
			continue
		}

		newG := r.gScore[u] + step
		if r.state[v] == stateOpen && newG >= r.gScore[v] {
			continue
		}

		r.gScore[v] = newG
		r.came[v] = u
		r.state[v] = stateOpen
		heap.Push(&r.pq, cellItem{idx: v, g: newG, f: newG + r.heuristic(vx, vy)})
	}
}

// heuristic estimates the remaining cost from (x,y) to the goal.
// Manhattan under Conn4, octile under Conn8; both are admissible for the
// configured step costs. The octile diagonal term is clamped to twice the
// cardinal cost: when diagonals are priced above two cardinal steps the
// cheapest real path replaces them with cardinal pairs, and the estimate
// must not charge more.
func (r *runner) heuristic(x, y int) float64 {
	dx := absInt(x - r.goal.X)
	dy := absInt(y - r.goal.Y)
	if r.cfg.Conn == grid.Conn8 {
		diag := r.cfg.DiagonalCost
		if two := 2 * r.cfg.CardinalCost; diag > two {
			diag = two
		}
		lo := min(dx, dy)
		return r.cfg.CardinalCost*float64(dx+dy-2*lo) + diag*float64(lo)
	}

	return r.cfg.CardinalCost * float64(dx+dy)
}

// reconstruct walks predecessor links from goal back to start and reverses.
func (r *runner) reconstruct(start, goal int32) []grid.Point {
	var rev []int32
	for at := goal; at != -1; at = r.came[at] {
		rev = append(rev, at)
		if at == start {
			break
		}
	}
	path := make([]grid.Point, len(rev))
	for i, idx := range rev {
		x, y := r.g.Coordinate(int(idx))
		path[len(rev)-1-i] = grid.Point{X: x, Y: y}
	}

	return path
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// cellItem is one open-set entry: a cell index with its g and f costs.
type cellItem struct {
	idx  int32
	g, f float64
}

// cellPQ is a min-heap over f with deterministic tie-breaking:
// equal f prefers the larger g (deeper, already-paid progress), then the
// smaller cell index. Lazy decrease-key: duplicates are pushed and stale
// entries skipped on pop via the state arena.
type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}

	return pq[i].idx < pq[j].idx
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
