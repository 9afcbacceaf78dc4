package gridgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/dstarlite/dstarlite"
	"github.com/katalvlaran/dstarlite/gridgraph"
)

// wall is a 5×3 grid whose middle row is blocked except at both ends.
//
//	1 1 1 1 1
//	1 0 0 0 1
//	1 1 1 1 1
func wall(t *testing.T) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	return gg
}

func quiet() dstarlite.Option {
	logger, _ := test.NewNullLogger()
	return dstarlite.WithLogger(logger)
}

func TestNewEngine_OutOfBounds(t *testing.T) {
	gg := wall(t)
	_, err := gg.NewEngine(-1, 0, 4, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.NewEngine(0, 0, 5, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestRoute_AroundWall(t *testing.T) {
	gg := wall(t)
	e, err := gg.NewEngine(0, 0, 4, 0, quiet())
	require.NoError(t, err)

	res, err := e.ComputeShortestPath()
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost)
	route, err := gridgraph.Route(e)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, route)

	// Close the top row: the only way is down, along the bottom and up.
	v, err := gg.SetCell(2, 0, 0)
	require.NoError(t, err)
	res, err = e.RecalculateNode(v)
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Cost)

	route, err = gridgraph.Route(e)
	require.NoError(t, err)
	want := []int{
		gg.Index(0, 0), gg.Index(0, 1), gg.Index(0, 2), gg.Index(1, 2),
		gg.Index(2, 2), gg.Index(3, 2), gg.Index(4, 2), gg.Index(4, 1), gg.Index(4, 0),
	}
	assert.Equal(t, want, route)
}

func TestRoute_NoPath(t *testing.T) {
	gg := wall(t)
	e, err := gg.NewEngine(0, 0, 4, 0, quiet())
	require.NoError(t, err)
	_, err = e.ComputeShortestPath()
	require.NoError(t, err)

	for _, xy := range [][2]int{{2, 0}, {2, 2}} {
		v, err := gg.SetCell(xy[0], xy[1], 0)
		require.NoError(t, err)
		_, err = e.RecalculateNode(v)
		require.NoError(t, err)
	}
	res, err := e.RecalculateNode(gg.Index(2, 0))
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.False(t, gg.SameComponent(e.Start(), e.Goal()))

	_, err = gridgraph.Route(e)
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)
}

func TestRoute_StartIsGoal(t *testing.T) {
	gg := wall(t)
	e, err := gg.NewEngine(2, 2, 2, 2, quiet())
	require.NoError(t, err)
	res, err := e.ComputeShortestPath()
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost)

	route, err := gridgraph.Route(e)
	require.NoError(t, err)
	assert.Equal(t, []int{gg.Index(2, 2)}, route)
}

func TestRoute_MoveStart(t *testing.T) {
	gg := wall(t)
	e, err := gg.NewEngine(0, 2, 4, 0, quiet())
	require.NoError(t, err)
	res, err := e.ComputeShortestPath()
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Cost)

	res, err = e.MoveStart(gg.Index(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Cost)
	route, err := gridgraph.Route(e)
	require.NoError(t, err)
	assert.Equal(t, gg.Index(1, 2), route[0])
	assert.Equal(t, gg.Index(4, 0), route[len(route)-1])
	assert.Len(t, route, 6)
}

// oracleCost runs gonum's Dijkstra over the walkable part of the grid,
// weighted exactly like the planner.
func oracleCost(gg *gridgraph.GridGraph, from, to int) float64 {
	og := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < gg.Len(); i++ {
		og.AddNode(simple.Node(i))
	}
	for u := 0; u < gg.Len(); u++ {
		ux, uy := gg.Coordinate(u)
		a, _ := gg.Cell(ux, uy)
		for _, d := range gg.NeighborOffsets() {
			b, err := gg.Cell(ux+d[0], uy+d[1])
			if err != nil {
				continue
			}
			v := gg.Index(b.X, b.Y)
			if c := gg.CellCost(a, b); v > u && !math.IsInf(c, 1) {
				og.SetWeightedEdge(og.NewWeightedEdge(simple.Node(u), simple.Node(v), c))
			}
		}
	}
	if from == to {
		return 0
	}

	return path.DijkstraFrom(simple.Node(to), og).WeightTo(int64(from))
}

// TestEngine_MatchesGonumUnderRandomEdits toggles random cells and checks
// every incremental replan against a from-scratch gonum Dijkstra.
func TestEngine_MatchesGonumUnderRandomEdits(t *testing.T) {
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		t.Run(conn.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			const w, h = 9, 7
			grid := make([][]int, h)
			for y := range grid {
				grid[y] = make([]int, w)
				for x := range grid[y] {
					grid[y][x] = rng.Intn(5) // 0 blocks, 1..4 walkable
				}
			}
			grid[0][0], grid[h-1][w-1] = 1, 1

			gg, err := gridgraph.From2D(grid, conn)
			require.NoError(t, err)
			e, err := gg.NewEngine(0, 0, w-1, h-1, quiet(), dstarlite.WithMaxIterations(1_000_000))
			require.NoError(t, err)
			res, err := e.ComputeShortestPath()
			require.NoError(t, err)

			check := func(step int) {
				want := oracleCost(gg, e.Start(), e.Goal())
				if math.IsInf(want, 1) {
					assert.True(t, math.IsInf(res.Cost, 1), "step %d: got %v, want +Inf", step, res.Cost)
					return
				}
				assert.InDelta(t, want, res.Cost, 1e-6, "step %d", step)
				route, err := gridgraph.Route(e)
				if assert.NoError(t, err, "step %d", step) {
					assert.Equal(t, e.Goal(), route[len(route)-1])
				}
			}
			check(0)

			for step := 1; step <= 40; step++ {
				x, y := rng.Intn(w), rng.Intn(h)
				v, err := gg.SetCell(x, y, rng.Intn(5))
				require.NoError(t, err)
				res, err = e.RecalculateNode(v)
				require.NoError(t, err)
				require.True(t, res.Converged)
				check(step)
			}
		})
	}
}
