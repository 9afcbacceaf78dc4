package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits go through SetCell only.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadThreshold if opts.LandThreshold < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.LandThreshold)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D is NewGridGraph with the default LandThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Planner vertices share this numbering.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Cell returns the cell at (x,y) with its current value.
func (gg *GridGraph) Cell(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}, nil
}

// SetCell overwrites the value at (x,y) and returns the cell's index,
// which is the vertex to report to Engine.RecalculateNode.
// Every edge touching the cell changes cost; its neighbours need no
// separate report since RecalculateNode refreshes them too.
func (gg *GridGraph) SetCell(x, y, value int) (int, error) {
	if !gg.InBounds(x, y) {
		return -1, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	gg.CellValues[y][x] = value

	return gg.Index(x, y), nil
}

// Walkable reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}
