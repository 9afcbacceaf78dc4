// Package dstarlite implements D* Lite, an incremental shortest-path planner
// that keeps a route from a start vertex to a fixed goal up to date while
// edge costs change, without recomputing the whole graph.
//
// What:
//
//   - Graph[T] is an arena of vertices addressed by int indices. The caller
//     adds vertices, connects them (always in both directions) and injects a
//     CostFunc and a HeuristicFunc that are re-evaluated on demand.
//   - Engine[T] searches backwards from the goal. g(v) is the believed cost
//     from v to the goal; rhs(v) is the one-step lookahead
//     min over neighbours n of cost(v, n) + g(n), pinned to 0 at the goal.
//   - The Frontier holds exactly the locally inconsistent vertices
//     (g != rhs), ordered by Key = (min(g,rhs) + h(v, start) + km, min(g,rhs)).
//
// Lifecycle:
//
//  1. NewEngine(g, start, goal, opts...)
//  2. Initialize()             g = rhs = +Inf everywhere, rhs(goal) = 0.
//  3. ComputeShortestPath()    drain until start is consistent.
//  4. RecalculateNode(v)       once per cost change around v; replans.
//  5. MoveStart(s)             re-anchor after the agent moved; replans.
//
// Reading a route is up to the caller: from the start, repeatedly step to
// the neighbour minimising cost(cur, n) + g(n) until the goal.
//
// Outcomes:
//
//   - Result.Cost == +Inf: no path exists. This is not an error.
//   - Result.Converged == false: the iteration cap (WithMaxIterations,
//     default 1000) stopped the search. A warning is logged through logrus
//     and g(start) takes rhs(start); treat values as best effort. Calling
//     ComputeShortestPath again resumes from where the cap stopped.
//   - ErrGraphNotInitialized / ErrUnknownVertex: misuse. The state readers
//     (G, RHS, Consistent) also refuse to answer before Initialize.
//
// Float tolerance:
//
// The search's comparisons (stale key, termination, local consistency,
// "did rhs depend on u") treat two values as equal when they agree within
// Epsilon, absolutely or relatively (WithEpsilon, default DefaultEpsilon =
// 1e-9). Infinities only equal infinities. Raise it if costs are large and accumulate rounding
// error; an epsilon larger than the smallest meaningful cost difference
// makes distinct routes compare equal. The Frontier itself orders keys
// exactly, so its pop order stays a strict weak ordering.
//
// Adjacency is symmetric: the neighbour list is used as both predecessor
// and successor set. An asymmetric CostFunc is evaluated in the direction
// of travel (cost(p, u) when p steps to u) but every connection exists in
// both directions; model a one-way edge by returning +Inf for the reverse.
//
// Concurrency: none. Engine and Graph must be used from one goroutine at a
// time; the caller serialises every call.
package dstarlite
