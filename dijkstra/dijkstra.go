// Package dijkstra implements Dijkstra's shortest-path algorithm on graphs whose
// vertices are dense integer indices and whose weights are float64 evaluators.
//
// It is the from-scratch reference the incremental planner is checked against:
// every incremental answer must equal what Dijkstra computes on the same graph
// snapshot.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and visited slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”,
//     plus the reverse adjacency when WithReverse is set.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any +Inf edge as an impassable “wall”.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance between Source and v (+Inf if unreachable).
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain Source (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g Graph, opts ...Option) ([]float64, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges; build the reverse adjacency on the way if needed.
	var reverse [][]int
	if cfg.Reverse {
		reverse = make([][]int, n)
	}
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbours(u) {
			if w := g.Cost(u, v); w < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
			}
			if reverse != nil {
				reverse[v] = append(reverse[v], u)
			}
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		reverse: reverse,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	reverse [][]int   // reverse[v] lists u with an edge u→v; nil unless Reverse.
	dist    []float64 // current best distance per vertex.
	visited []bool    // finalized flags.
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge leaving u (or entering u, when Reverse is set)
// and pushes improved distances.
func (r *runner) relax(u int) error {
	targets := r.g.Neighbours(u)
	if r.reverse != nil {
		targets = r.reverse[u]
	}

	var w, newDist float64
	for _, v := range targets {
		if r.reverse != nil {
			w = r.g.Cost(v, u)
		} else {
			w = r.g.Cost(u, v)
		}

		// Walls.
		if math.IsInf(w, 1) {
			continue
		}
		// Costs are evaluators and may have changed since the pre-scan.
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist = r.dist[u] + w
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
