package cluster

// mergeUndersized performs one merge pass over the freshly tiled clusters:
// every cluster whose walkable-cell count is below threshold is folded into
// its best-scoring aligned neighbor, producing one Merged cluster and
// retiring both inputs. The pass is not recursive — Merged results are never
// re-merged, and only original tiles may serve as merge targets.
//
// Candidate score is walkable-count similarity plus size-ratio similarity
// (each the min/max ratio, in (0,1]); equal scores keep the lower-indexed
// candidate so the pass is deterministic.
func mergeUndersized(clusters []Cluster, threshold int) []Cluster {
	n := len(clusters)
	retired := make([]bool, n)
	var additions []Cluster

	for i := 0; i < n; i++ {
		if retired[i] || clusters[i].WalkableCells >= threshold {
			continue
		}

		best, bestScore := -1, 0.0
		for j := 0; j < n; j++ {
			if j == i || retired[j] {
				continue
			}
			if !alignedUnion(&clusters[i], &clusters[j]) {
				continue
			}
			score := ratio(clusters[i].WalkableCells, clusters[j].WalkableCells) +
				ratio(clusters[i].area(), clusters[j].area())
			if score > bestScore {
				best, bestScore = j, score
			}
		}
		if best < 0 {
			continue // isolated or unaligned; keep the small cluster as-is
		}

		additions = append(additions, unionOf(&clusters[i], &clusters[best]))
		retired[i], retired[best] = true, true
	}

	out := make([]Cluster, 0, n-len(additions))
	for i := 0; i < n; i++ {
		if !retired[i] {
			out = append(out, clusters[i])
		}
	}

	return append(out, additions...)
}

// alignedUnion reports whether the union of the two cluster rectangles is
// itself a rectangle: they must be grid-adjacent and share full extent on
// the touching axis. Adjacent tiles from the stride-k sweep always satisfy
// this on one axis (same row band or same column band).
func alignedUnion(a, b *Cluster) bool {
	if a.Y == b.Y && a.Height == b.Height {
		return a.X+a.Width == b.X || b.X+b.Width == a.X
	}
	if a.X == b.X && a.Width == b.Width {
		return a.Y+a.Height == b.Y || b.Y+b.Height == a.Y
	}

	return false
}

// unionOf builds the Merged cluster covering both input rectangles.
// Callers must ensure alignedUnion(a, b) beforehand.
func unionOf(a, b *Cluster) Cluster {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)

	return Cluster{
		X:             x,
		Y:             y,
		Width:         max(a.X+a.Width, b.X+b.Width) - x,
		Height:        max(a.Y+a.Height, b.Y+b.Height) - y,
		Kind:          Merged,
		WalkableCells: a.WalkableCells + b.WalkableCells,
	}
}

// ratio returns min(a,b)/max(a,b) as a similarity in (0, 1].
func ratio(a, b int) float64 {
	if a > b {
		a, b = b, a
	}
	if b == 0 {
		return 0
	}

	return float64(a) / float64(b)
}
