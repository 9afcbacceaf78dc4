package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a LandThreshold below 1.
	ErrBadThreshold = errors.New("gridgraph: land threshold must be at least 1")
	// ErrOutOfBounds indicates a coordinate or index outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNoPath indicates no walkable route exists from the start to the goal.
	ErrNoPath = errors.New("gridgraph: no path between start and goal")
)
