package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Cell is a grid coordinate with the value it held when the Cell was taken.
// Planner graphs carry Cells as payloads; their cost evaluators ignore Value
// and read the live grid instead.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Grid value at (X, Y) when the Cell was produced
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold is the minimum cell value that is walkable.
	// Cells below it block movement. Must be at least 1.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are walkable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph.
// Width and Height define dimensions; CellValues[y][x] holds the current value.
// Values change only through SetCell, so planner graphs built by
// ToPlannerGraph always see the latest terrain.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int
}
