package dstarlite

import "container/heap"

// frontierItem is a heap slot. index tracks the slot position so that
// arbitrary entries can be removed or re-keyed with heap.Remove / heap.Fix.
type frontierItem struct {
	vertex int
	key    Key
	index  int
}

// frontierHeap is a min-heap of *frontierItem ordered exactly by K1, then
// K2, then vertex index. The order must be a strict weak ordering, so no
// tolerance applies here; Key.Less with an epsilon is for the search's
// stale-key and termination checks.
type frontierHeap struct {
	items []*frontierItem
}

func (h frontierHeap) Len() int { return len(h.items) }

func (h frontierHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.key.K1 != b.key.K1 {
		return a.key.K1 < b.key.K1
	}
	if a.key.K2 != b.key.K2 {
		return a.key.K2 < b.key.K2
	}

	return a.vertex < b.vertex
}

func (h frontierHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *frontierHeap) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(h.items)
	h.items = append(h.items, item)
}

func (h *frontierHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	h.items = old[:n-1]

	return item
}

// Frontier is the open set of D* Lite: the inconsistent vertices ordered by
// Key. The lookup map is the single source of truth for whether a vertex is
// queued and under which key; it guarantees at most one entry per vertex.
//
// Complexity: Insert, PopMin, Remove, Update are O(log n); Contains, KeyOf,
// PeekMinKey are O(1).
type Frontier struct {
	heap   frontierHeap
	lookup map[int]*frontierItem
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		lookup: make(map[int]*frontierItem),
	}
}

// Len returns the number of queued vertices.
func (f *Frontier) Len() int { return f.heap.Len() }

// Contains reports whether v is queued.
func (f *Frontier) Contains(v int) bool {
	_, ok := f.lookup[v]
	return ok
}

// KeyOf returns the key v is queued under.
func (f *Frontier) KeyOf(v int) (Key, bool) {
	item, ok := f.lookup[v]
	if !ok {
		return Key{}, false
	}

	return item.key, true
}

// Insert queues v under key. If v is already queued its key is replaced,
// preserving the one-entry-per-vertex invariant.
func (f *Frontier) Insert(key Key, v int) {
	if item, ok := f.lookup[v]; ok {
		item.key = key
		heap.Fix(&f.heap, item.index)
		return
	}
	item := &frontierItem{vertex: v, key: key}
	heap.Push(&f.heap, item)
	f.lookup[v] = item
}

// Update re-keys a queued vertex. It reports false if v is not queued.
func (f *Frontier) Update(v int, key Key) bool {
	item, ok := f.lookup[v]
	if !ok {
		return false
	}
	item.key = key
	heap.Fix(&f.heap, item.index)

	return true
}

// Remove drops v from the frontier; removing an absent vertex is a no-op.
func (f *Frontier) Remove(v int) {
	item, ok := f.lookup[v]
	if !ok {
		return
	}
	heap.Remove(&f.heap, item.index)
	delete(f.lookup, v)
}

// PeekMinKey returns the smallest queued key, or (+Inf, +Inf) when empty.
func (f *Frontier) PeekMinKey() Key {
	if f.heap.Len() == 0 {
		return Key{K1: Inf, K2: Inf}
	}

	return f.heap.items[0].key
}

// PopMin removes and returns the minimum entry. The caller must check Len
// first; popping an empty frontier panics.
func (f *Frontier) PopMin() (Key, int) {
	item := heap.Pop(&f.heap).(*frontierItem)
	delete(f.lookup, item.vertex)

	return item.key, item.vertex
}

// Clear empties the frontier.
func (f *Frontier) Clear() {
	clear(f.heap.items)
	f.heap.items = f.heap.items[:0]
	clear(f.lookup)
}
