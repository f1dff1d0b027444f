package planner

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/hpath/grid"
)

// cacheKey digests everything a result depends on: the grid's content
// snapshot, both endpoints, and every option that changes planning output.
// Two queries collide only if all of those agree (or on a genuine 64-bit
// hash collision, accepted as cache semantics).
func (p *Planner) cacheKey(g *grid.Grid, start, goal grid.Point) uint64 {
	h := xxhash.New()
	_, _ = h.Write(g.Snapshot())

	var buf [8]byte
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}

	writeInt(int64(start.X))
	writeInt(int64(start.Y))
	writeInt(int64(goal.X))
	writeInt(int64(goal.Y))

	// Canonical option encoding, fixed field order.
	writeInt(int64(p.opts.ClusterSize))
	writeInt(int64(p.opts.MergeThreshold))
	writeInt(int64(p.opts.MinEntranceWidth))
	writeInt(int64(p.opts.MaxEntranceWidth))
	if p.opts.AllowDiagonal {
		writeInt(1)
	} else {
		writeInt(0)
	}
	writeFloat(p.opts.CardinalCost)
	writeFloat(p.opts.DiagonalCost)
	if p.opts.UsePathSmoothing {
		writeInt(1)
		writeFloat(p.opts.SmoothingFactor)
		writeInt(p.opts.Seed)
	} else {
		writeInt(0)
	}
	writeInt(int64(p.opts.MaxIterations))
	writeFloat(p.opts.MaxEdgeCost)

	return h.Sum64()
}
