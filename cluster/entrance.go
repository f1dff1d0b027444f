package cluster

import (
	"github.com/katalvlaran/hpath/grid"
)

// detectEntrances scans every unordered adjacent cluster pair for maximal
// runs of mutually walkable border cells and records one Entrance per run
// within the configured width range. Runs outside the range are discarded
// whole, never merged, never split, though any open pair still marks the
// border crossable. Entrance lists are attached to the owning clusters only
// after all pairs have been scanned.
func detectEntrances(g *grid.Grid, s *Set, cfg Options) {
	for i := range s.Clusters {
		for _, nb := range s.Clusters[i].Neighbors {
			if nb <= s.Clusters[i].ID {
				continue // each unordered pair scanned exactly once
			}
			scanPair(g, s, &s.Clusters[i], &s.Clusters[nb], cfg)
		}
	}

	// Attach after generation completes so partially built state is never
	// observable through a cluster's entrance list.
	for i := range s.Entrances {
		e := &s.Entrances[i]
		s.Clusters[e.Clusters[0]].Entrances = append(s.Clusters[e.Clusters[0]].Entrances, e.ID)
		s.Clusters[e.Clusters[1]].Entrances = append(s.Clusters[e.Clusters[1]].Entrances, e.ID)
	}
}

// scanPair dispatches on the orientation of the shared border. a.ID < b.ID
// holds for every call; the entrance anchor always sits on a's side so both
// owners agree on one canonical point.
func scanPair(g *grid.Grid, s *Set, a, b *Cluster, cfg Options) {
	switch {
	case a.X+a.Width == b.X: // b to the right of a
		scanVerticalBorder(g, s, a, b, b.X-1, b.X, cfg)
	case b.X+b.Width == a.X: // b to the left of a
		scanVerticalBorder(g, s, a, b, a.X, a.X-1, cfg)
	case a.Y+a.Height == b.Y: // b below a
		scanHorizontalBorder(g, s, a, b, b.Y-1, b.Y, cfg)
	case b.Y+b.Height == a.Y: // b above a
		scanHorizontalBorder(g, s, a, b, a.Y, a.Y-1, cfg)
	}
}

// scanVerticalBorder walks the shared vertical border in grid order (top to
// bottom). A border cell pair is open when both sides are walkable; maximal
// open runs within [MinEntranceWidth, MaxEntranceWidth] become entrances
// anchored at the run's first cell in column anchorX.
func scanVerticalBorder(g *grid.Grid, s *Set, a, b *Cluster, anchorX, otherX int, cfg Options) {
	yLo := max(a.Y, b.Y)
	yHi := min(a.Y+a.Height, b.Y+b.Height)

	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart
		if length >= cfg.MinEntranceWidth && length <= cfg.MaxEntranceWidth {
			s.Entrances = append(s.Entrances, Entrance{
				ID:           EntranceID(len(s.Entrances)),
				At:           grid.Point{X: anchorX, Y: runStart},
				Clusters:     [2]ClusterID{a.ID, b.ID},
				OnGridBorder: runStart == 0 || end == g.Height,
				Cost:         float64(length),
			})
		}
		runStart = -1
	}

	for y := yLo; y < yHi; y++ {
		if g.WalkableAt(anchorX, y) && g.WalkableAt(otherX, y) {
			if runStart < 0 {
				runStart = y
				s.markCrossing(a.ID, b.ID)
			}
			continue
		}
		flush(y)
	}
	flush(yHi)
}

// scanHorizontalBorder is the transposed twin of scanVerticalBorder: the
// shared border is horizontal and scanned left to right.
func scanHorizontalBorder(g *grid.Grid, s *Set, a, b *Cluster, anchorY, otherY int, cfg Options) {
	xLo := max(a.X, b.X)
	xHi := min(a.X+a.Width, b.X+b.Width)

	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart
		if length >= cfg.MinEntranceWidth && length <= cfg.MaxEntranceWidth {
			s.Entrances = append(s.Entrances, Entrance{
				ID:           EntranceID(len(s.Entrances)),
				At:           grid.Point{X: runStart, Y: anchorY},
				Clusters:     [2]ClusterID{a.ID, b.ID},
				OnGridBorder: runStart == 0 || end == g.Width,
				Cost:         float64(length),
			})
		}
		runStart = -1
	}

	for x := xLo; x < xHi; x++ {
		if g.WalkableAt(x, anchorY) && g.WalkableAt(x, otherY) {
			if runStart < 0 {
				runStart = x
				s.markCrossing(a.ID, b.ID)
			}
			continue
		}
		flush(x)
	}
	flush(xHi)
}
