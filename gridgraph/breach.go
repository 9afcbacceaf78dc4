package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds a route from cell index from to cell index to that crosses
// the fewest blocked cells, ignoring cell values otherwise. It answers
// "what would have to be cleared" when a planner reports no path.
// Returns the route (both endpoints included) and the number of blocked
// cells on it, endpoints counted; the count is 0 exactly when
// SameComponent(from, to).
//
// Behavior:
//  1. Validate indices.
//  2. 0–1 BFS from the source cell:
//     • Moving into a walkable cell → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when the target is dequeued.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) Breach(from, to int) (path []int, blocked int, err error) {
	n := gg.Len()
	if from < 0 || from >= n {
		return nil, 0, fmt.Errorf("%w: index %d", ErrOutOfBounds, from)
	}
	if to < 0 || to >= n {
		return nil, 0, fmt.Errorf("%w: index %d", ErrOutOfBounds, to)
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	if fx, fy := gg.Coordinate(from); !gg.Walkable(fx, fy) {
		dist[from] = 1
	} else {
		dist[from] = 0
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(from)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == to {
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			step := 0
			if !gg.Walkable(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// The grid is connected through blocked cells, so to is always reached.
	for at := to; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[to], nil
}
