package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dstarlite/dstarlite"
)

// ToPlannerGraph builds a dstarlite graph over every cell, blocked or not.
// Vertex i is the cell at Coordinate(i); adjacency follows gg.Conn.
// The evaluators are gg.CellCost and gg.Heuristic, so later SetCell calls
// are visible to the planner without rebuilding.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToPlannerGraph() (*dstarlite.Graph[Cell], error) {
	g, err := dstarlite.NewGraph(gg.CellCost, gg.Heuristic)
	if err != nil {
		return nil, err
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			g.AddVertex(Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				v := gg.Index(nx, ny)
				if v < u {
					continue // connected from the other side
				}
				if err = g.Connect(u, v); err != nil {
					return nil, fmt.Errorf("gridgraph: connect (%d,%d): %w", x, y, err)
				}
			}
		}
	}

	return g, nil
}

// NewEngine builds a planner graph and an initialized engine that plans
// from (sx,sy) to (gx,gy). Call ComputeShortestPath to search.
func (gg *GridGraph) NewEngine(sx, sy, gx, gy int, opts ...dstarlite.Option) (*dstarlite.Engine[Cell], error) {
	if !gg.InBounds(sx, sy) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, sx, sy)
	}
	if !gg.InBounds(gx, gy) {
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrOutOfBounds, gx, gy)
	}
	g, err := gg.ToPlannerGraph()
	if err != nil {
		return nil, err
	}
	e, err := dstarlite.NewEngine(g, gg.Index(sx, sy), gg.Index(gx, gy), opts...)
	if err != nil {
		return nil, err
	}
	e.Initialize()

	return e, nil
}

// Route reads the current route out of e by greedy descent: from the start,
// step to the neighbour minimising cost + g until the goal. Ties go to the
// first neighbour in connectivity order.
// Returns ErrNoPath if the start has infinite cost or the descent stalls,
// which happens when the last search did not converge.
func Route(e *dstarlite.Engine[Cell]) ([]int, error) {
	g := e.Graph()
	cur, goal := e.Start(), e.Goal()
	if gs, _ := e.G(cur); math.IsInf(gs, 1) && cur != goal {
		return nil, ErrNoPath
	}

	path := []int{cur}
	seen := map[int]struct{}{cur: {}}
	for cur != goal {
		next, best := -1, math.Inf(1)
		for _, n := range g.Neighbours(cur) {
			gn, _ := e.G(n)
			if c := g.Cost(cur, n) + gn; c < best {
				next, best = n, c
			}
		}
		if next < 0 {
			return path, fmt.Errorf("%w: stalled at vertex %d", ErrNoPath, cur)
		}
		if _, loop := seen[next]; loop {
			return path, fmt.Errorf("%w: revisits vertex %d", ErrNoPath, next)
		}
		seen[next] = struct{}{}
		path = append(path, next)
		cur = next
	}

	return path, nil
}
