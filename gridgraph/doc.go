// Package gridgraph treats a 2D grid of integer cells as terrain for the
// dstarlite planner, and answers reachability questions about it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a LandThreshold:
//     cells with value ≥ LandThreshold are walkable, the rest block.
//   - ToPlannerGraph / NewEngine turn every cell into a planner vertex
//     (vertex index == row-major cell index) whose edge costs are read from
//     the live grid: the mean of the two cell values times the step length.
//   - SetCell edits terrain and returns the vertex to hand to
//     Engine.RecalculateNode; Route reads the planned path back out.
//   - ConnectedComponents and SameComponent identify walkable regions.
//   - Breach finds the fewest blocked cells separating two cells.
//
// Why:
//
//   - Robot and game-agent navigation over maps that change as they are
//     explored, where replanning from scratch after every edit is wasteful.
//
// Complexity:
//
//   - ToPlannerGraph:      O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Breach:              O(W×H×d), Memory: O(W×H).
//   - Route:               O(L×d) for a route of L cells.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum walkable value (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold below 1.
//   - ErrOutOfBounds: coordinate or index outside the grid.
//   - ErrNoPath: Route found no way from the start to the goal.
package gridgraph
