package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/hpath/abstract"
	"github.com/katalvlaran/hpath/astar"
	"github.com/katalvlaran/hpath/cluster"
	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/refine"
)

// Planner sequences the hierarchical pipeline and owns the result cache.
// A Planner does no internal locking: callers sharing one instance across
// goroutines must serialize FindPath externally, or use one instance per
// goroutine (all state is instance-owned, never process-global).
type Planner struct {
	opts  Options
	cache *lru.Cache[uint64, *Result] // nil when caching is disabled
}

// New constructs a Planner from functional options.
// The only runtime failure is cache construction; every other option is
// validated (by panic) in its constructor.
func New(opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Planner{opts: cfg}
	if cfg.CacheSize > 0 {
		c, err := lru.New[uint64, *Result](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("planner: cache: %w", err)
		}
		p.cache = c
	}

	return p, nil
}

// FindPath plans a route from start to goal on g.
//
// Pipeline: validate → (cache probe) → cluster.Build → abstract.Build →
// abstract.FindRoute → refine.Refine → (refine.Smooth) → Result.
//
// On failure the returned *Result still carries the statistics block with
// Stats.Err set, alongside the sentinel error (see package doc for the
// taxonomy). A failed call leaves the planner untouched; a successful one
// may add a single cache entry.
func (p *Planner) FindPath(g *grid.Grid, start, goal grid.Point) (*Result, error) {
	t0 := time.Now()
	res := &Result{Stats: Stats{QueryID: uuid.New()}}
	fail := func(err error) (*Result, error) {
		res.Stats.Err = err.Error()
		res.Stats.TotalTime = time.Since(t0)

		return res, err
	}

	// 1) Input validation — rejected before any stage runs.
	if g == nil {
		return fail(ErrNilGrid)
	}
	if !g.InBounds(start.X, start.Y) {
		return fail(fmt.Errorf("%w: start %s", ErrOutOfBounds, start))
	}
	if !g.InBounds(goal.X, goal.Y) {
		return fail(fmt.Errorf("%w: goal %s", ErrOutOfBounds, goal))
	}
	if !g.WalkableAt(start.X, start.Y) {
		return fail(fmt.Errorf("%w: start %s", ErrBlocked, start))
	}
	if !g.WalkableAt(goal.X, goal.Y) {
		return fail(fmt.Errorf("%w: goal %s", ErrBlocked, goal))
	}

	// 2) Trivial query: no clustering, no search, zero iterations.
	if start.Equal(goal) {
		res.Found = true
		res.Path = []grid.Point{start}
		res.Length = 1
		res.Stats.TotalTime = time.Since(t0)

		return res, nil
	}

	// 3) Cache probe.
	var key uint64
	if p.cache != nil {
		key = p.cacheKey(g, start, goal)
		if hit, ok := p.cache.Get(key); ok {
			out := cloneResult(hit)
			out.Stats.QueryID = res.Stats.QueryID
			out.Stats.CacheHit = true
			out.Stats.TotalTime = time.Since(t0)

			return out, nil
		}
	}

	// 4) Partition the grid and detect entrances.
	clusterOpts := []cluster.Option{
		cluster.WithClusterSize(p.opts.ClusterSize),
		cluster.WithEntranceWidths(p.opts.MinEntranceWidth, p.opts.MaxEntranceWidth),
	}
	if p.opts.MergeThreshold > 0 {
		clusterOpts = append(clusterOpts, cluster.WithMergeThreshold(p.opts.MergeThreshold))
	}
	set, err := cluster.Build(g, clusterOpts...)
	if err != nil {
		return fail(err)
	}
	res.Stats.Clusters = len(set.Clusters)
	res.Stats.Entrances = len(set.Entrances)

	startCluster, ok := set.ClusterAt(start)
	if !ok {
		return fail(fmt.Errorf("%w: start %s is in no cluster", ErrNoAbstractPath, start))
	}
	goalCluster, ok := set.ClusterAt(goal)
	if !ok {
		return fail(fmt.Errorf("%w: goal %s is in no cluster", ErrNoAbstractPath, goal))
	}

	// 5) Build the coarse graph and plan on it.
	graph, err := abstract.Build(g, set, abstract.WithMaxEdgeCost(p.opts.MaxEdgeCost))
	if err != nil {
		return fail(err)
	}
	res.Stats.AbstractNodes = len(graph.Nodes)
	res.Stats.AbstractEdges = len(graph.Edges)

	route, err := abstract.FindRoute(graph, startCluster, goalCluster,
		abstract.WithMaxIterations(p.opts.MaxIterations))
	if err != nil {
		if errors.Is(err, abstract.ErrNoRoute) {
			return fail(fmt.Errorf("%w: %v", ErrNoAbstractPath, err))
		}

		return fail(err)
	}
	res.Route = route.Nodes
	res.Stats.Iterations = route.Iterations

	// 6) Refine the coarse route into a cell path; smooth if configured.
	conn := grid.Conn4
	if p.opts.AllowDiagonal {
		conn = grid.Conn8
	}
	search := astar.NewSearcher(
		astar.WithConnectivity(conn),
		astar.WithCardinalCost(p.opts.CardinalCost),
		astar.WithDiagonalCost(p.opts.DiagonalCost),
	)

	// Same-cluster queries skip the anchors: a detour through the cluster
	// center would only pad the path, and a failed direct search then means
	// genuine disconnection, not a refinement artifact.
	waypoints := make([]grid.Point, 0, len(route.Nodes)+2)
	waypoints = append(waypoints, start)
	if startCluster != goalCluster {
		for _, n := range route.Nodes {
			waypoints = append(waypoints, graph.Nodes[n].At)
		}
	}
	waypoints = append(waypoints, goal)

	tRefine := time.Now()
	path, cost, err := refine.Refine(g, waypoints, search)
	if err != nil {
		res.Stats.RefineTime = time.Since(tRefine)
		if startCluster == goalCluster {
			return fail(fmt.Errorf("%w: %v", ErrNoAbstractPath, err))
		}

		return fail(fmt.Errorf("%w: %v", ErrRefine, err))
	}
	if p.opts.UsePathSmoothing {
		path = refine.Smooth(g, path,
			refine.WithFactor(p.opts.SmoothingFactor),
			refine.WithSeed(p.opts.Seed),
			refine.WithConnectivity(conn),
		)
		cost = p.pathCost(path)
	}
	res.Stats.RefineTime = time.Since(tRefine)

	res.Found = true
	res.Path = path
	res.Cost = cost
	res.Length = len(path)
	res.Stats.TotalTime = time.Since(t0)

	// 7) Normal cache growth on success only.
	if p.cache != nil {
		p.cache.Add(key, cloneResult(res))
	}

	return res, nil
}

// pathCost sums the configured step costs along a cell path.
func (p *Planner) pathCost(path []grid.Point) float64 {
	cost := 0.0
	for i := 1; i < len(path); i++ {
		if grid.Diagonal(path[i].X-path[i-1].X, path[i].Y-path[i-1].Y) {
			cost += p.opts.DiagonalCost
			continue
		}
		cost += p.opts.CardinalCost
	}

	return cost
}

// cloneResult deep-copies the caller-owned slices so cached results and
// handed-out results never alias.
func cloneResult(r *Result) *Result {
	out := *r
	out.Path = append([]grid.Point(nil), r.Path...)
	out.Route = append([]abstract.NodeID(nil), r.Route...)

	return &out
}
