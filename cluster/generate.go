package cluster

import (
	"github.com/katalvlaran/hpath/grid"
)

// Build partitions g into clusters and detects the entrances connecting
// them. The returned Set is a fresh, immutable arena; Build never mutates g.
//
// Stages, in order:
//  1. Tile the grid at stride ClusterSize; trailing tiles are clipped to the
//     remaining extent, never padded. Tiles with zero walkable cells are
//     dropped entirely.
//  2. Classify each tile Border (touches the grid's outer edge) or Interior.
//  3. Optional single merge pass for undersized clusters (see merge.go).
//  4. Recompute neighbor lists over the final rectangles.
//  5. Detect entrances on every adjacent pair and attach them to both
//     owners' entrance lists.
//
// A grid with no walkable cells yields a Set with zero clusters and nil
// error; downstream stages then report "no route" rather than "bad input".
//
// Complexity: O(W×H + C² + border cells), C = retained cluster count.
func Build(g *grid.Grid, opts ...Option) (*Set, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}

	clusters := tile(g, cfg.ClusterSize)
	if cfg.MergeThreshold > 0 {
		clusters = mergeUndersized(clusters, cfg.MergeThreshold)
	}

	// Reassign dense IDs after drops and merges so the slice is an arena.
	for i := range clusters {
		clusters[i].ID = ClusterID(i)
	}

	set := &Set{Clusters: clusters}
	computeNeighbors(set)
	detectEntrances(g, set, cfg)

	return set, nil
}

// tile sweeps cluster origins at stride k along both axes, counting walkable
// cells per candidate and dropping empty candidates.
func tile(g *grid.Grid, k int) []Cluster {
	var out []Cluster
	for y0 := 0; y0 < g.Height; y0 += k {
		for x0 := 0; x0 < g.Width; x0 += k {
			w := min(k, g.Width-x0)
			h := min(k, g.Height-y0)

			walkable := 0
			for y := y0; y < y0+h; y++ {
				for x := x0; x < x0+w; x++ {
					if g.At(x, y).Traversable() {
						walkable++
					}
				}
			}
			if walkable == 0 {
				continue // no empty clusters exist in the output
			}

			kind := Interior
			if x0 == 0 || y0 == 0 || x0+w == g.Width || y0+h == g.Height {
				kind = Border
			}

			out = append(out, Cluster{
				X: x0, Y: y0, Width: w, Height: h,
				Kind:          kind,
				WalkableCells: walkable,
			})
		}
	}

	return out
}

// computeNeighbors fills every cluster's Neighbors list by pairwise
// rectangle adjacency. C is ceil(W/k)×ceil(H/k) at most, so the quadratic
// scan is cheap next to the O(W×H) tiling that preceded it.
func computeNeighbors(s *Set) {
	for i := range s.Clusters {
		for j := i + 1; j < len(s.Clusters); j++ {
			if !adjacentRects(&s.Clusters[i], &s.Clusters[j]) {
				continue
			}
			s.Clusters[i].Neighbors = append(s.Clusters[i].Neighbors, s.Clusters[j].ID)
			s.Clusters[j].Neighbors = append(s.Clusters[j].Neighbors, s.Clusters[i].ID)
		}
	}
}

// adjacentRects reports whether two cluster rectangles share a horizontal or
// vertical border segment of nonzero length. Corner contact does not count.
func adjacentRects(a, b *Cluster) bool {
	if a.X+a.Width == b.X || b.X+b.Width == a.X {
		return spanOverlap(a.Y, a.Height, b.Y, b.Height) > 0
	}
	if a.Y+a.Height == b.Y || b.Y+b.Height == a.Y {
		return spanOverlap(a.X, a.Width, b.X, b.Width) > 0
	}

	return false
}

// spanOverlap returns the length of the intersection of [aStart, aStart+aLen)
// and [bStart, bStart+bLen).
func spanOverlap(aStart, aLen, bStart, bLen int) int {
	lo := max(aStart, bStart)
	hi := min(aStart+aLen, bStart+bLen)
	if hi <= lo {
		return 0
	}

	return hi - lo
}
