package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order from its first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Len())
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) || seen[gg.Index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood(gg.Index(x, y), seen))
		}
	}

	return comps
}

// SameComponent reports whether cells a and b are both walkable and
// connected through walkable cells. A planner reporting +Inf between two
// cells that are in the same component has not converged.
// Time: O(W·H·d) worst case.
func (gg *GridGraph) SameComponent(a, b int) bool {
	if a < 0 || a >= gg.Len() || b < 0 || b >= gg.Len() {
		return false
	}
	ax, ay := gg.Coordinate(a)
	bx, by := gg.Coordinate(b)
	if !gg.Walkable(ax, ay) || !gg.Walkable(bx, by) {
		return false
	}
	seen := make([]bool, gg.Len())
	gg.flood(a, seen)

	return seen[b]
}

// flood collects the walkable component containing seed by BFS, marking
// every visited cell in seen.
func (gg *GridGraph) flood(seed int, seen []bool) []int {
	queue := []int{seed}
	seen[seed] = true
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.Walkable(vx, vy) {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
