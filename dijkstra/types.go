// Package dijkstra defines core types and configuration options
// for the Dijkstra reference search over index-addressed graphs.
//
// Options:
//
//	– Source:  index of the starting vertex (must be present in the graph).
//	– Reverse: relax edges against their direction, yielding distances *to* Source.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Graph is the read-only view Dijkstra needs. Vertices are the indices
// [0, Order()). Neighbours(v) lists the candidate targets of v and
// Cost(from, to) evaluates the current edge weight; +Inf marks an
// impassable edge. *dstarlite.Graph satisfies this interface.
type Graph interface {
	Order() int
	Neighbours(v int) []int
	Cost(from, to int) float64
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source  – starting vertex index (must be present in the graph).
// Reverse – relax u→v using Cost(v, u), i.e. compute the cost of
//
//	reaching Source from every vertex.
type Options struct {
	Source  int  // The index of the source vertex
	Reverse bool // Whether distances are measured towards Source
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReverse measures every distance towards Source instead of away from it.
// On graphs with symmetric costs both directions coincide.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex index.
//
// Defaults:
//   - Source:  <as passed> (validated in Dijkstra).
//   - Reverse: false.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}
