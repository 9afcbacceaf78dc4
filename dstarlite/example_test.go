package dstarlite_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dstarlite/dstarlite"
)

// ExampleEngine_RecalculateNode plans across a diamond, makes one branch
// expensive and replans incrementally.
func ExampleEngine_RecalculateNode() {
	weights := map[[2]string]float64{
		{"A", "B"}: 1, {"A", "C"}: 1, {"B", "D"}: 1, {"C", "D"}: 1,
	}
	cost := func(a, b string) float64 {
		if w, ok := weights[[2]string{a, b}]; ok {
			return w
		}
		if w, ok := weights[[2]string{b, a}]; ok {
			return w
		}
		return math.Inf(1)
	}
	noHeuristic := func(string, string) float64 { return 0 }

	g, _ := dstarlite.NewGraph(cost, noHeuristic)
	a, b, c, d := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C"), g.AddVertex("D")
	_ = g.Connect(a, b)
	_ = g.Connect(a, c)
	_ = g.Connect(b, d)
	_ = g.Connect(c, d)

	e, _ := dstarlite.NewEngine(g, a, d)
	e.Initialize()
	res, _ := e.ComputeShortestPath()
	fmt.Println("initial cost:", res.Cost)

	weights[[2]string{"B", "D"}] = 100
	res, _ = e.RecalculateNode(b)
	fmt.Println("after B-D=100:", res.Cost)

	weights[[2]string{"C", "D"}] = math.Inf(1)
	res, _ = e.RecalculateNode(c)
	fmt.Println("after C-D blocked:", res.Cost)

	weights[[2]string{"B", "D"}] = math.Inf(1)
	res, _ = e.RecalculateNode(d)
	fmt.Println("reachable:", res.Reachable())
	// Output:
	// initial cost: 2
	// after B-D=100: 2
	// after C-D blocked: 101
	// reachable: false
}
