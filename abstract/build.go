package abstract

import (
	"math"

	"github.com/katalvlaran/hpath/cluster"
	"github.com/katalvlaran/hpath/grid"
)

// Build constructs the coarse graph from the final cluster and entrance
// arenas. It is a pure, deterministic function of its inputs: identical sets
// always yield identical graphs, and isolated clusters simply contribute no
// edges — there is no failure mode beyond nil inputs.
//
// Node anchors:
//
//   - Cluster nodes sit at the cluster's geometric center, snapped to the
//     nearest walkable cell inside the cluster (ties broken by row-major
//     order) so every anchor is reachable by the refinement search.
//   - Entrance nodes sit exactly at the entrance's representative point.
//
// Complexity: O(C·k²) anchor snapping + O(Σ entrance pairs) + O(Σ neighbors).
func Build(g *grid.Grid, set *cluster.Set, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if set == nil {
		return nil, ErrNilSet
	}

	gr := &Graph{
		clusterNodes: make([]NodeID, len(set.Clusters)),
	}

	// One cluster node per cluster, in arena order.
	for i := range set.Clusters {
		c := &set.Clusters[i]
		id := NodeID(len(gr.Nodes))
		gr.clusterNodes[c.ID] = id
		gr.Nodes = append(gr.Nodes, Node{
			ID:      id,
			Kind:    ClusterNode,
			At:      snapAnchor(g, c),
			Cluster: c.ID,
		})
	}

	// One entrance node per entrance, in arena order.
	entranceNodes := make([]NodeID, len(set.Entrances))
	for i := range set.Entrances {
		e := &set.Entrances[i]
		id := NodeID(len(gr.Nodes))
		entranceNodes[e.ID] = id
		gr.Nodes = append(gr.Nodes, Node{
			ID:       id,
			Kind:     EntranceNode,
			At:       e.At,
			Entrance: e.ID,
		})
	}

	gr.adj = make([][]int32, len(gr.Nodes))

	// Intra-cluster edges: cluster node ↔ each of its entrance nodes.
	for i := range set.Clusters {
		c := &set.Clusters[i]
		for _, eid := range c.Entrances {
			gr.addEdge(gr.clusterNodes[c.ID], entranceNodes[eid], cfg.MaxEdgeCost)
		}
	}

	// Inter-cluster edges: entrance ↔ entrance whenever the two entrances
	// share at least one connecting cluster. Enumerating per cluster covers
	// both across-boundary and same-cluster pairs; the seen set keeps pairs
	// that share both clusters from being inserted twice.
	seen := make(map[[2]cluster.EntranceID]bool)
	for i := range set.Clusters {
		ents := set.Clusters[i].Entrances
		for a := 0; a < len(ents); a++ {
			for b := a + 1; b < len(ents); b++ {
				key := [2]cluster.EntranceID{ents[a], ents[b]}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				if seen[key] {
					continue
				}
				seen[key] = true
				gr.addEdge(entranceNodes[ents[a]], entranceNodes[ents[b]], cfg.MaxEdgeCost)
			}
		}
	}

	// Direct cluster ↔ cluster shortcuts for grid-adjacent clusters whose
	// shared border is crossable at all, entrance or not. Pairs with a fully
	// blocked border get no edge: a coarse route must never promise a
	// crossing that no cell path can realize.
	for i := range set.Clusters {
		c := &set.Clusters[i]
		for _, nb := range c.Neighbors {
			if nb <= c.ID {
				continue // each unordered pair once
			}
			if !set.Crossable(c.ID, nb) {
				continue
			}
			gr.addEdge(gr.clusterNodes[c.ID], gr.clusterNodes[nb], cfg.MaxEdgeCost)
		}
	}

	return gr, nil
}

// addEdge inserts the logical connection from ↔ to as two directed edges,
// each carrying the two-endpoint coarse path. Edges whose Euclidean cost
// exceeds ceiling are discarded to bound graph density.
func (g *Graph) addEdge(from, to NodeID, ceiling float64) {
	cost := euclid(g.Nodes[from].At, g.Nodes[to].At)
	if cost > ceiling {
		return
	}

	for _, dir := range [2][2]NodeID{{from, to}, {to, from}} {
		idx := int32(len(g.Edges))
		g.Edges = append(g.Edges, Edge{
			From:      dir[0],
			To:        dir[1],
			Cost:      cost,
			Waypoints: []grid.Point{g.Nodes[dir[0]].At, g.Nodes[dir[1]].At},
		})
		g.adj[dir[0]] = append(g.adj[dir[0]], idx)
	}
}

// snapAnchor returns the walkable cell of c nearest to its geometric center
// (squared Euclidean distance, row-major tie-break). Every retained cluster
// has at least one walkable cell, so the scan always succeeds.
func snapAnchor(g *grid.Grid, c *cluster.Cluster) grid.Point {
	center := c.Center()
	if g.WalkableAt(center.X, center.Y) {
		return center
	}

	best := center
	bestD := math.MaxInt
	for y := c.Y; y < c.Y+c.Height; y++ {
		for x := c.X; x < c.X+c.Width; x++ {
			if !g.At(x, y).Traversable() {
				continue
			}
			d := (x-center.X)*(x-center.X) + (y-center.Y)*(y-center.Y)
			if d < bestD {
				best, bestD = grid.Point{X: x, Y: y}, d
			}
		}
	}

	return best
}

// euclid is the straight-line distance between two cell coordinates.
func euclid(a, b grid.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
