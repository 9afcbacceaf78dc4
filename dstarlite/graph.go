package dstarlite

import (
	"fmt"
	"slices"
)

// Vertex is one arena slot: the caller's payload, the search state owned by
// the Engine, and the adjacency list. The same list serves as both the
// predecessor and the successor set, so every connection is traversable in
// both directions; asymmetric costs are allowed but the edge always exists
// both ways.
type Vertex[T any] struct {
	payload    T
	g          float64
	rhs        float64
	neighbours []int
}

// Graph is a contiguous arena of vertices addressed by stable integer
// indices. Vertex membership is fixed once an Engine is built on it; only
// the values returned by the cost and heuristic evaluators change over time.
//
// Graph is not safe for concurrent use.
type Graph[T any] struct {
	vertices  []Vertex[T]
	cost      CostFunc[T]
	heuristic HeuristicFunc[T]
}

// NewGraph returns an empty graph that evaluates edge weights with cost and
// estimates with heuristic.
func NewGraph[T any](cost CostFunc[T], heuristic HeuristicFunc[T]) (*Graph[T], error) {
	if cost == nil {
		return nil, ErrNilCost
	}
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}

	return &Graph[T]{cost: cost, heuristic: heuristic}, nil
}

// AddVertex appends a vertex carrying payload and returns its index.
// Identity is the index, never the payload value.
func (g *Graph[T]) AddVertex(payload T) int {
	g.vertices = append(g.vertices, Vertex[T]{
		payload: payload,
		g:       Inf,
		rhs:     Inf,
	})

	return len(g.vertices) - 1
}

// Connect links a and b in both adjacency lists. Connecting an already
// connected pair is a no-op.
func (g *Graph[T]) Connect(a, b int) error {
	if !g.has(a) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, a)
	}
	if !g.has(b) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, b)
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	if slices.Contains(g.vertices[a].neighbours, b) {
		return nil
	}
	g.vertices[a].neighbours = append(g.vertices[a].neighbours, b)
	g.vertices[b].neighbours = append(g.vertices[b].neighbours, a)

	return nil
}

// Order returns the number of vertices.
func (g *Graph[T]) Order() int { return len(g.vertices) }

// Payload returns the caller payload stored at v.
func (g *Graph[T]) Payload(v int) (T, error) {
	if !g.has(v) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return g.vertices[v].payload, nil
}

// Neighbours returns the adjacency of v, or nil for an unknown index.
// The returned slice must not be modified.
func (g *Graph[T]) Neighbours(v int) []int {
	if !g.has(v) {
		return nil
	}

	return g.vertices[v].neighbours
}

// Cost evaluates the current weight of the edge from → to.
func (g *Graph[T]) Cost(from, to int) float64 {
	return g.cost(g.vertices[from].payload, g.vertices[to].payload)
}

// Heuristic evaluates the estimate between from and to.
func (g *Graph[T]) Heuristic(from, to int) float64 {
	return g.heuristic(g.vertices[from].payload, g.vertices[to].payload)
}

func (g *Graph[T]) has(v int) bool { return v >= 0 && v < len(g.vertices) }
