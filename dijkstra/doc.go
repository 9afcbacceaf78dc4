// Package dijkstra provides Dijkstra's shortest-path algorithm on graphs with
// non-negative float64 edge weights and dense integer vertex indices.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - +Inf edges are impassable walls; WithReverse yields distances *to* the source.
//
// When to use:
//
//   - As the from-scratch oracle for the incremental planner in package dstarlite:
//     run it with Source(goal) and WithReverse() to obtain the exact g-values
//     a converged D* Lite search must hold.
//   - Anywhere a one-off shortest-path tree over a *dstarlite.Graph is needed.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  Source outside [0, Order()).
//   - ErrNegativeWeight:  any edge evaluates to a negative weight.
//
// Thread safety:
//
//   - Dijkstra only reads g. Callers must not mutate the costs g reports while it runs.
package dijkstra
