package planner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/planner"
)

// PlannerSuite exercises the full pipeline end to end.
type PlannerSuite struct {
	suite.Suite
}

// mustGrid parses ASCII rows or fails the suite.
func (s *PlannerSuite) mustGrid(rows []string) *grid.Grid {
	g, err := grid.Parse(rows)
	require.NoError(s.T(), err)

	return g
}

// openRows returns w×h obstacle-free ASCII rows.
func openRows(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}

	return rows
}

// requireValidPath asserts the path starts and ends as requested and every
// step is walkable and adjacent under conn.
func (s *PlannerSuite) requireValidPath(g *grid.Grid, path []grid.Point, start, goal grid.Point, conn grid.Connectivity) {
	t := s.T()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	for i, p := range path {
		require.True(t, g.WalkableAt(p.X, p.Y), "path[%d] = %s not walkable", i, p)
		if i == 0 {
			continue
		}
		dx, dy := p.X-path[i-1].X, p.Y-path[i-1].Y
		require.False(t, dx == 0 && dy == 0, "duplicate point at %d", i)
		require.True(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1,
			"non-unit step %s → %s", path[i-1], p)
		if conn == grid.Conn4 {
			require.False(t, grid.Diagonal(dx, dy), "diagonal step under Conn4 at %d", i)
		}
	}
}

// TestValidationLadder verifies bad inputs are rejected with the matching
// sentinel and a populated Stats.Err.
func (s *PlannerSuite) TestValidationLadder() {
	t := s.T()
	g := s.mustGrid([]string{"..#", "..."})
	p, err := planner.New()
	require.NoError(t, err)

	res, err := p.FindPath(nil, grid.Point{}, grid.Point{})
	require.ErrorIs(t, err, planner.ErrNilGrid)
	require.NotEmpty(t, res.Stats.Err)

	_, err = p.FindPath(g, grid.Point{X: -1, Y: 0}, grid.Point{})
	require.ErrorIs(t, err, planner.ErrOutOfBounds)
	_, err = p.FindPath(g, grid.Point{}, grid.Point{X: 5, Y: 5})
	require.ErrorIs(t, err, planner.ErrOutOfBounds)

	res, err = p.FindPath(g, grid.Point{X: 2, Y: 0}, grid.Point{})
	require.ErrorIs(t, err, planner.ErrBlocked)
	require.False(t, res.Found)
	_, err = p.FindPath(g, grid.Point{}, grid.Point{X: 2, Y: 0})
	require.ErrorIs(t, err, planner.ErrBlocked)
}

// TestTrivialQuery verifies start==goal returns a single-point path with no
// pipeline work.
func (s *PlannerSuite) TestTrivialQuery() {
	t := s.T()
	g := s.mustGrid(openRows(4, 4))
	p, err := planner.New()
	require.NoError(t, err)

	pt := grid.Point{X: 2, Y: 2}
	res, err := p.FindPath(g, pt, pt)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []grid.Point{pt}, res.Path)
	require.Equal(t, 1, res.Length)
	require.Zero(t, res.Cost)
	require.Zero(t, res.Stats.Iterations)
	require.Zero(t, res.Stats.Clusters, "trivial queries never partition the grid")
}

// TestOpenField verifies the canonical 20×20 query: structure counts, path
// validity and a fresh QueryID per call.
func (s *PlannerSuite) TestOpenField() {
	t := s.T()
	g := s.mustGrid(openRows(20, 20))
	p, err := planner.New(planner.WithClusterSize(10))
	require.NoError(t, err)

	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19}
	res, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 4, res.Stats.Clusters)
	require.GreaterOrEqual(t, res.Stats.Entrances, 2)
	require.Positive(t, res.Stats.AbstractNodes)
	require.Positive(t, res.Stats.Iterations)
	require.NotEmpty(t, res.Route)
	s.requireValidPath(g, res.Path, start, goal, grid.Conn4)
	require.Equal(t, len(res.Path), res.Length)
	require.Equal(t, float64(res.Length-1), res.Cost, "unit cardinal steps")

	again, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	require.NotEqual(t, res.Stats.QueryID, again.Stats.QueryID)
}

// TestMazeRoute verifies planning threads a real maze, start to goal.
func (s *PlannerSuite) TestMazeRoute() {
	t := s.T()
	g := s.mustGrid([]string{
		"........#.......",
		"######..#..###..",
		".....#..#..#.#..",
		"..#..#..#..#.#..",
		"..#..#..#..#.#..",
		"..#..........#..",
		"..####..####.#..",
		"..#..........#..",
		"..#..######..#..",
		"................",
	})
	p, err := planner.New(planner.WithClusterSize(4))
	require.NoError(t, err)

	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 15, Y: 9}
	res, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	s.requireValidPath(g, res.Path, start, goal, grid.Conn4)
}

// TestWalledBoundary verifies a fully walled cluster boundary reports a
// connectivity failure, never a validation error.
func (s *PlannerSuite) TestWalledBoundary() {
	t := s.T()
	// Vertical wall splits the grid into two components.
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = strings.Repeat(".", 10) + "#" + strings.Repeat(".", 9)
	}
	g := s.mustGrid(rows)
	p, err := planner.New(planner.WithClusterSize(10))
	require.NoError(t, err)

	res, err := p.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19})
	require.ErrorIs(t, err, planner.ErrNoAbstractPath)
	require.NotErrorIs(t, err, planner.ErrOutOfBounds)
	require.NotErrorIs(t, err, planner.ErrBlocked)
	require.False(t, res.Found)
	require.Empty(t, res.Path)
	require.NotEmpty(t, res.Stats.Err)
}

// TestSameClusterDisconnected verifies disconnection inside a single cluster
// is still a connectivity failure.
func (s *PlannerSuite) TestSameClusterDisconnected() {
	t := s.T()
	g := s.mustGrid([]string{
		".#.",
		".#.",
		".#.",
	})
	p, err := planner.New(planner.WithClusterSize(3))
	require.NoError(t, err)

	_, err = p.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})
	require.ErrorIs(t, err, planner.ErrNoAbstractPath)
}

// TestDeterministic verifies identical queries yield identical paths.
func (s *PlannerSuite) TestDeterministic() {
	t := s.T()
	g := s.mustGrid(openRows(30, 30))
	p, err := planner.New(planner.WithClusterSize(10))
	require.NoError(t, err)

	start, goal := grid.Point{X: 1, Y: 1}, grid.Point{X: 28, Y: 27}
	first, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	for run := 0; run < 5; run++ {
		res, err := p.FindPath(g, start, goal)
		require.NoError(t, err)
		require.Equal(t, first.Path, res.Path, "run %d diverged", run)
		require.Equal(t, first.Cost, res.Cost)
	}
}

// TestDiagonalMovement verifies Conn8 shortens the open-field path.
func (s *PlannerSuite) TestDiagonalMovement() {
	t := s.T()
	g := s.mustGrid(openRows(20, 20))
	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19}

	straight, err := planner.New(planner.WithClusterSize(10))
	require.NoError(t, err)
	diagonal, err := planner.New(planner.WithClusterSize(10), planner.WithDiagonal())
	require.NoError(t, err)

	a, err := straight.FindPath(g, start, goal)
	require.NoError(t, err)
	b, err := diagonal.FindPath(g, start, goal)
	require.NoError(t, err)
	require.Less(t, b.Cost, a.Cost)
	s.requireValidPath(g, b.Path, start, goal, grid.Conn8)
}

// TestSmoothingDeterministic verifies the seeded smoothing pass reproduces
// and stays cell-valid.
func (s *PlannerSuite) TestSmoothingDeterministic() {
	t := s.T()
	g := s.mustGrid(openRows(20, 20))
	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19}

	mk := func() *planner.Planner {
		p, err := planner.New(
			planner.WithClusterSize(10),
			planner.WithSmoothing(0.8),
			planner.WithSeed(1234),
		)
		require.NoError(t, err)

		return p
	}

	a, err := mk().FindPath(g, start, goal)
	require.NoError(t, err)
	b, err := mk().FindPath(g, start, goal)
	require.NoError(t, err)
	require.Equal(t, a.Path, b.Path, "same seed must reproduce exactly")
	require.Equal(t, a.Cost, b.Cost)
	s.requireValidPath(g, a.Path, start, goal, grid.Conn4)
}

// TestSmoothingDeadEndAnchor verifies smoothing survives routes whose
// cluster anchor sits in a dead-end stub: the stitched path enters and
// retraces the stub, and the smoothing pass must collapse that backtrack
// rather than fail on it.
func (s *PlannerSuite) TestSmoothingDeadEndAnchor() {
	t := s.T()
	g := s.mustGrid([]string{
		"........",
		"#.######",
		"########",
		"########",
	})

	p, err := planner.New(planner.WithClusterSize(4), planner.WithSmoothing(1))
	require.NoError(t, err)

	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 7, Y: 0}
	res, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	s.requireValidPath(g, res.Path, start, goal, grid.Conn4)
}

// TestMergePassThreaded verifies the merge option flows through the pipeline
// and shrinks the cluster count.
func (s *PlannerSuite) TestMergePassThreaded() {
	t := s.T()
	// Right column of tiles is nearly blocked, so it merges leftward.
	rows := make([]string, 8)
	for i := range rows {
		if i == 0 {
			rows[i] = strings.Repeat(".", 8) + "...#"
			continue
		}
		rows[i] = strings.Repeat(".", 8) + "####"
	}
	g := s.mustGrid(rows)

	plain, err := planner.New(planner.WithClusterSize(4))
	require.NoError(t, err)
	merged, err := planner.New(planner.WithClusterSize(4), planner.WithMergeThreshold(4))
	require.NoError(t, err)

	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 10, Y: 0}
	a, err := plain.FindPath(g, start, goal)
	require.NoError(t, err)
	b, err := merged.FindPath(g, start, goal)
	require.NoError(t, err)
	require.Less(t, b.Stats.Clusters, a.Stats.Clusters)
	s.requireValidPath(g, b.Path, start, goal, grid.Conn4)
}

// TestCacheHit verifies the second identical query is served from the cache
// with an equal path, a fresh QueryID and CacheHit set.
func (s *PlannerSuite) TestCacheHit() {
	t := s.T()
	g := s.mustGrid(openRows(20, 20))
	p, err := planner.New(planner.WithClusterSize(10), planner.WithCaching(4))
	require.NoError(t, err)

	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19}
	cold, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	require.False(t, cold.Stats.CacheHit)

	warm, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	require.True(t, warm.Stats.CacheHit)
	require.Equal(t, cold.Path, warm.Path)
	require.Equal(t, cold.Cost, warm.Cost)
	require.NotEqual(t, cold.Stats.QueryID, warm.Stats.QueryID)

	// Handed-out paths never alias the cached copy.
	warm.Path[0] = grid.Point{X: 9, Y: 9}
	third, err := p.FindPath(g, start, goal)
	require.NoError(t, err)
	require.Equal(t, start, third.Path[0])
}

// TestCacheDistinguishesQueries verifies different endpoints and different
// grids miss the cache.
func (s *PlannerSuite) TestCacheDistinguishesQueries() {
	t := s.T()
	p, err := planner.New(planner.WithClusterSize(10), planner.WithCaching(8))
	require.NoError(t, err)

	g1 := s.mustGrid(openRows(20, 20))
	res, err := p.FindPath(g1, grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19})
	require.NoError(t, err)
	require.False(t, res.Stats.CacheHit)

	res, err = p.FindPath(g1, grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 18})
	require.NoError(t, err)
	require.False(t, res.Stats.CacheHit, "different goal must miss")

	rows := openRows(20, 20)
	rows[10] = strings.Repeat(".", 19) + "#"
	g2 := s.mustGrid(rows)
	res, err = p.FindPath(g2, grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19})
	require.NoError(t, err)
	require.False(t, res.Stats.CacheHit, "changed grid content must miss")
}

// TestCacheEviction verifies the LRU bound: capacity 1 evicts the older
// entry when a second query lands.
func (s *PlannerSuite) TestCacheEviction() {
	t := s.T()
	g := s.mustGrid(openRows(20, 20))
	p, err := planner.New(planner.WithClusterSize(10), planner.WithCaching(1))
	require.NoError(t, err)

	a := [2]grid.Point{{X: 0, Y: 0}, {X: 19, Y: 19}}
	b := [2]grid.Point{{X: 0, Y: 19}, {X: 19, Y: 0}}

	_, err = p.FindPath(g, a[0], a[1])
	require.NoError(t, err)
	_, err = p.FindPath(g, b[0], b[1]) // evicts a
	require.NoError(t, err)

	res, err := p.FindPath(g, a[0], a[1])
	require.NoError(t, err)
	require.False(t, res.Stats.CacheHit, "capacity-1 cache must have evicted the first entry")

	// That miss re-inserted a (evicting b in turn), so a now hits.
	res, err = p.FindPath(g, a[0], a[1])
	require.NoError(t, err)
	require.True(t, res.Stats.CacheHit, "re-inserted entry must be served from cache")
}

// TestOptionPanics verifies invalid planner options panic at construction.
func (s *PlannerSuite) TestOptionPanics() {
	t := s.T()
	cases := []struct {
		name string
		opt  planner.Option
	}{
		{"ClusterSizeOne", planner.WithClusterSize(1)},
		{"NegativeMerge", planner.WithMergeThreshold(-1)},
		{"InvertedWidths", planner.WithEntranceWidths(4, 2)},
		{"ZeroCardinal", planner.WithCardinalCost(0)},
		{"NegativeDiagonal", planner.WithDiagonalCost(-2)},
		{"FactorOverOne", planner.WithSmoothing(1.5)},
		{"ZeroIterations", planner.WithMaxIterations(0)},
		{"ZeroEdgeCost", planner.WithMaxEdgeCost(0)},
		{"ZeroCache", planner.WithCaching(0)},
	}
	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tc.name)
				}
			}()
			_, _ = planner.New(tc.opt)
		}()
	}
}

// TestPlannerSuite wires the suite into go test.
func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}
