// Package dstarlite is the root of an incremental shortest-path toolkit
// built around D* Lite: plan once, then keep the plan current as edge
// costs change or the agent moves, at a fraction of the cost of
// replanning from scratch.
//
// Layout:
//
//	dstarlite/  Graph, Frontier and Engine: the planner itself
//	gridgraph/  2D terrain grids as planner graphs, routes, reachability
//	dijkstra/   from-scratch reference distances over the same graphs
//	metrics/    Prometheus collector the engine reports into
//	scenario/   YAML scenario files with validation and hot reload
//	cmd/dstarlite  plan and watch commands over scenario files
//	examples/rover a rover discovering obstacles while it drives
//
// Quick example:
//
//	gg, _ := gridgraph.From2D(rows, gridgraph.Conn8)
//	e, _ := gg.NewEngine(0, 0, 9, 9)
//	res, _ := e.ComputeShortestPath()
//	v, _ := gg.SetCell(4, 4, 0)   // a cell becomes blocked
//	res, _ = e.RecalculateNode(v) // incremental replan
//	route, _ := gridgraph.Route(e)
//
// The planner is single-threaded; callers serialise access.
package dstarlite
