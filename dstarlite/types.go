// Package dstarlite defines the sentinel errors, evaluator types and
// functional options shared by the D* Lite engine.
package dstarlite

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dstarlite/metrics"
)

// Sentinel errors returned by the dstarlite package.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to NewEngine.
	ErrNilGraph = errors.New("dstarlite: graph is nil")

	// ErrNilCost indicates that the graph was built without a cost evaluator.
	ErrNilCost = errors.New("dstarlite: cost evaluator is nil")

	// ErrNilHeuristic indicates that the graph was built without a heuristic evaluator.
	ErrNilHeuristic = errors.New("dstarlite: heuristic evaluator is nil")

	// ErrUnknownVertex indicates a vertex index outside the graph's vertex set.
	ErrUnknownVertex = errors.New("dstarlite: unknown vertex")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("dstarlite: self-loop not allowed")

	// ErrGraphNotInitialized indicates that a search operation or a state
	// reader was invoked before Initialize.
	ErrGraphNotInitialized = errors.New("dstarlite: engine not initialized")

	// ErrOptionViolation is returned by NewEngine when an invalid Option was supplied.
	ErrOptionViolation = errors.New("dstarlite: invalid option supplied")
)

const (
	// DefaultMaxIterations bounds a single ComputeShortestPath call.
	DefaultMaxIterations = 1000

	// DefaultEpsilon is the tolerance used for every float comparison the
	// engine makes (keys, local consistency, rhs dependency checks). It is
	// applied both as an absolute and as a relative tolerance.
	DefaultEpsilon = 1e-9
)

// Inf is the cost of an unreachable vertex and of an impassable edge.
var Inf = math.Inf(1)

// CostFunc returns the weight of the edge from → to. It is re-evaluated on
// demand and may return different values between calls; that is what makes
// the graph dynamic. Returning +Inf marks the edge impassable. It must be
// side-effect free and non-negative.
type CostFunc[T any] func(from, to T) float64

// HeuristicFunc returns an admissible (never overestimating) estimate of the
// cost between two payloads. The engine always evaluates it towards the
// current search start.
type HeuristicFunc[T any] func(from, to T) float64

// Options holds the tunables of an Engine.
type Options struct {
	// MaxIterations caps the number of frontier pops in one
	// ComputeShortestPath call. Reaching it logs a warning and returns a
	// non-converged Result.
	MaxIterations int

	// Epsilon is the tolerance of float equality.
	Epsilon float64

	// Logger receives the iteration-cap warning and replanning debug lines.
	Logger logrus.FieldLogger

	// Metrics, if non-nil, records search counters.
	Metrics *metrics.Collector

	// internal error recorded during option parsing
	err error
}

// Option configures an Engine via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by NewEngine.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - MaxIterations: DefaultMaxIterations
//   - Epsilon:       DefaultEpsilon
//   - Logger:        logrus.StandardLogger()
//   - Metrics:       nil (disabled)
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
		Logger:        logrus.StandardLogger(),
	}
}

// WithMaxIterations sets the per-search iteration cap. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithEpsilon sets the float comparison tolerance used by the search's
// consistency and key checks. Frontier heap order is exact and ignores it.
// eps must be finite and non-negative.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: epsilon must be finite and non-negative, got %v", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithLogger replaces the default logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		if logger == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.Logger = logger
	}
}

// WithMetrics attaches a prometheus-backed collector.
func WithMetrics(m *metrics.Collector) Option {
	return func(o *Options) { o.Metrics = m }
}

// Result summarises one ComputeShortestPath run.
type Result struct {
	// Iterations is the number of frontier pops performed.
	Iterations int
	// Converged is false when the iteration cap stopped the search.
	Converged bool
	// Cost is g(start) after the search; +Inf when no path exists.
	Cost float64
}

// Reachable reports whether the goal can be reached from the start.
func (r Result) Reachable() bool { return !math.IsInf(r.Cost, 1) }
