package abstract

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hpath/cluster"
)

// Node states tracked in the per-search scratch arena.
const (
	stateUnseen uint8 = iota
	stateOpen
	stateClosed
)

// FindRoute runs A* over the coarse graph from the cluster node of `from`
// to the cluster node of `to`. The heuristic is the straight-line distance
// between node positions, admissible because every edge cost is at least
// the Euclidean distance between its endpoints.
//
// from == to short-circuits to a single-node route with zero iterations.
//
// Termination: success when the goal node is popped from the open set;
// ErrNoRoute when the open set drains or the iteration budget is exhausted
// first. Tie-breaking on equal f prefers the larger accumulated cost g
// (pushes the search toward already-explored depth, reducing reopening),
// then the smaller node ID — fully deterministic.
//
// All bookkeeping lives in per-call scratch arrays indexed by NodeID, so
// concurrent FindRoute calls over one shared Graph are safe.
//
// Complexity: O((V + E) log V) time, O(V + E) scratch.
func FindRoute(g *Graph, from, to cluster.ClusterID, opts ...Option) (*Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	start, ok := g.ClusterNode(from)
	if !ok {
		return nil, fmt.Errorf("%w: start cluster %d", ErrClusterNotFound, from)
	}
	goal, ok := g.ClusterNode(to)
	if !ok {
		return nil, fmt.Errorf("%w: goal cluster %d", ErrClusterNotFound, to)
	}

	if start == goal {
		return &Route{Nodes: []NodeID{start}, Cost: 0, Iterations: 0}, nil
	}

	r := &searchState{
		g:      g,
		gScore: make([]float64, len(g.Nodes)),
		came:   make([]int32, len(g.Nodes)),
		state:  make([]uint8, len(g.Nodes)),
	}
	for i := range r.came {
		r.came[i] = -1
	}

	goalAt := g.Nodes[goal].At
	heap.Init(&r.pq)
	r.state[start] = stateOpen
	heap.Push(&r.pq, nodeItem{id: int32(start), g: 0, f: euclid(g.Nodes[start].At, goalAt)})

	iterations := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if r.state[u] == stateClosed {
			continue
		}
		r.state[u] = stateClosed

		iterations++
		if iterations > cfg.MaxIterations {
			return nil, fmt.Errorf("%w: iteration budget %d exhausted", ErrNoRoute, cfg.MaxIterations)
		}

		// Goal popped ⇒ its cost is final.
		if NodeID(u) == goal {
			return &Route{
				Nodes:      r.reconstruct(int32(start), int32(goal)),
				Cost:       r.gScore[goal],
				Iterations: iterations,
			}, nil
		}

		// Relax every outgoing edge of u.
		for _, ei := range g.adj[u] {
			e := &g.Edges[ei]
			v := int32(e.To)
			if r.state[v] == stateClosed {
				continue
			}

			newG := r.gScore[u] + e.Cost
			if r.state[v] == stateOpen && newG >= r.gScore[v] {
				continue
			}

			r.gScore[v] = newG
			r.came[v] = u
			r.state[v] = stateOpen
			heap.Push(&r.pq, nodeItem{id: v, g: newG, f: newG + euclid(g.Nodes[v].At, goalAt)})
		}
	}

	return nil, fmt.Errorf("%w: cluster %d → cluster %d", ErrNoRoute, from, to)
}

// searchState is the per-call scratch arena: costs, predecessors and
// open/closed membership indexed by NodeID, plus the open-set heap.
// Allocated fresh per FindRoute so no state bleeds across calls.
type searchState struct {
	g      *Graph
	gScore []float64
	came   []int32
	state  []uint8
	pq     nodePQ
}

// reconstruct walks predecessor links from goal back to start and reverses.
func (r *searchState) reconstruct(start, goal int32) []NodeID {
	var rev []int32
	for at := goal; at != -1; at = r.came[at] {
		rev = append(rev, at)
		if at == start {
			break
		}
	}
	out := make([]NodeID, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = NodeID(id)
	}

	return out
}

// nodeItem is one open-set entry: a node with its g and f costs.
type nodeItem struct {
	id   int32
	g, f float64
}

// nodePQ is a min-heap over f with deterministic tie-breaking:
// equal f prefers the larger g, then the smaller node ID.
// Lazy decrease-key: duplicates are pushed, stale entries skipped on pop.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
