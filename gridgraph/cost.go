package gridgraph

import "math"

// CellCost is the planner's edge cost between two adjacent cells:
// the mean of their live values times the step length (1 orthogonally,
// √2 diagonally). Moving into or out of a blocked cell costs +Inf.
//
// Value fields of a and b are ignored; the grid is read at call time.
func (gg *GridGraph) CellCost(a, b Cell) float64 {
	if !gg.Walkable(a.X, a.Y) || !gg.Walkable(b.X, b.Y) {
		return math.Inf(1)
	}
	mean := float64(gg.CellValues[a.Y][a.X]+gg.CellValues[b.Y][b.X]) / 2
	if a.X != b.X && a.Y != b.Y {
		return mean * math.Sqrt2
	}

	return mean
}

// Heuristic estimates the cost between two cells: Manhattan distance for
// Conn4, octile distance for Conn8, scaled by LandThreshold. Every walkable
// value is at least the threshold, so the estimate never exceeds CellCost
// summed along any route.
func (gg *GridGraph) Heuristic(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	scale := float64(gg.LandThreshold)
	if gg.Conn == Conn8 {
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return (hi - lo + lo*math.Sqrt2) * scale
	}

	return (dx + dy) * scale
}
