package dstarlite

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Engine runs D* Lite from a fixed goal towards a (possibly moving) start on
// a Graph. The search runs backwards: g(v) is the believed cost from v to
// the goal, and keys use the heuristic from each vertex to the start.
//
// Lifecycle:
//
//	e, _ := NewEngine(g, start, goal)
//	e.Initialize()
//	res, _ := e.ComputeShortestPath()
//	// ... edge cost around v changed:
//	res, _ = e.RecalculateNode(v)
//
// Engine is not safe for concurrent use; callers serialise every call.
type Engine[T any] struct {
	graph       *Graph[T]
	start       int
	goal        int
	km          float64
	frontier    *Frontier
	opts        Options
	initialized bool
}

// NewEngine binds an engine to g with the given start and goal vertices.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNilCost / ErrNilHeuristic if g has no evaluators.
//   - ErrUnknownVertex if start or goal is not in g.
//   - ErrOptionViolation if an Option was invalid.
func NewEngine[T any](g *Graph[T], start, goal int, opts ...Option) (*Engine[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.cost == nil {
		return nil, ErrNilCost
	}
	if g.heuristic == nil {
		return nil, ErrNilHeuristic
	}
	if !g.has(start) {
		return nil, fmt.Errorf("%w: start %d", ErrUnknownVertex, start)
	}
	if !g.has(goal) {
		return nil, fmt.Errorf("%w: goal %d", ErrUnknownVertex, goal)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Engine[T]{
		graph:    g,
		start:    start,
		goal:     goal,
		frontier: NewFrontier(),
		opts:     cfg,
	}, nil
}

// Initialize resets every vertex to g = rhs = +Inf, clears the frontier and
// km, pins rhs(goal) = 0 and queues the goal.
func (e *Engine[T]) Initialize() {
	for i := range e.graph.vertices {
		e.graph.vertices[i].g = Inf
		e.graph.vertices[i].rhs = Inf
	}
	e.frontier.Clear()
	e.km = 0
	e.graph.vertices[e.goal].rhs = 0
	e.frontier.Insert(e.calculateKey(e.goal), e.goal)
	e.initialized = true
	e.opts.Metrics.SetFrontierSize(e.frontier.Len())
}

// CalculateKey returns the current priority of v. It has no side effects.
func (e *Engine[T]) CalculateKey(v int) (Key, error) {
	if !e.graph.has(v) {
		return Key{}, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return e.calculateKey(v), nil
}

func (e *Engine[T]) calculateKey(v int) Key {
	vx := &e.graph.vertices[v]
	m := math.Min(vx.g, vx.rhs)

	return Key{K1: m + e.graph.Heuristic(v, e.start) + e.km, K2: m}
}

// ComputeShortestPath drains the frontier until the start vertex is locally
// consistent and no queued key orders before the start's key.
//
// The loop is bounded by Options.MaxIterations. Reaching the cap is not an
// error: a warning is logged, g(start) takes rhs(start), the start's
// neighbours are re-evaluated against that value, and the Result reports
// Converged == false. Calling ComputeShortestPath again resumes the search.
// A Result with Cost == +Inf means no path exists.
func (e *Engine[T]) ComputeShortestPath() (Result, error) {
	if !e.initialized {
		return Result{Cost: Inf}, ErrGraphNotInitialized
	}

	eps := e.opts.Epsilon
	iterations := 0
	converged := true
	for e.searching() {
		if iterations >= e.opts.MaxIterations {
			converged = false
			e.opts.Logger.WithFields(logrus.Fields{
				"iterations": iterations,
				"start":      e.start,
				"goal":       e.goal,
				"km":         e.km,
			}).Warn("dstarlite: iteration cap reached before convergence")
			break
		}
		if e.frontier.Len() == 0 {
			// start inconsistent with nothing left to propagate
			converged = false
			e.opts.Logger.WithField("start", e.start).Warn("dstarlite: frontier exhausted with inconsistent start")
			break
		}
		iterations++

		kOld, u := e.frontier.PopMin()
		kNew := e.calculateKey(u)
		vu := &e.graph.vertices[u]

		switch {
		case kOld.Less(kNew, eps):
			e.frontier.Insert(kNew, u)
			e.opts.Metrics.StaleReinsert()

		case vu.g > vu.rhs && !approxEqual(vu.g, vu.rhs, eps):
			vu.g = vu.rhs
			for _, p := range e.graph.vertices[u].neighbours {
				if p != e.goal {
					vp := &e.graph.vertices[p]
					vp.rhs = math.Min(vp.rhs, e.graph.Cost(p, u)+vu.g)
				}
				e.updateVertex(p)
			}

		default:
			gOld := vu.g
			vu.g = Inf
			for _, p := range e.graph.vertices[u].neighbours {
				e.retract(p, u, gOld)
			}
			e.retract(u, u, gOld)
		}
	}

	if !converged {
		s := &e.graph.vertices[e.start]
		s.g = s.rhs
		// neighbours derived their rhs from the old g(start)
		for _, p := range s.neighbours {
			e.refresh(p)
		}
		e.updateVertex(e.start)
	}
	e.opts.Metrics.ObserveSearch(iterations, converged)
	e.opts.Metrics.SetFrontierSize(e.frontier.Len())

	return Result{
		Iterations: iterations,
		Converged:  converged,
		Cost:       e.graph.vertices[e.start].g,
	}, nil
}

// searching is the loop guard of ComputeShortestPath.
func (e *Engine[T]) searching() bool {
	s := &e.graph.vertices[e.start]
	if !approxEqual(s.g, s.rhs, e.opts.Epsilon) {
		return true
	}

	return e.frontier.Len() > 0 && e.frontier.PeekMinKey().Less(e.calculateKey(e.start), e.opts.Epsilon)
}

// retract handles p after u's value gOld was withdrawn: if rhs(p) was
// derived through u (or p is u itself) it is recomputed from scratch.
func (e *Engine[T]) retract(p, u int, gOld float64) {
	if p != e.goal {
		vp := &e.graph.vertices[p]
		if p == u || approxEqual(vp.rhs, e.graph.Cost(p, u)+gOld, e.opts.Epsilon) {
			vp.rhs = e.lookahead(p)
		}
	}
	e.updateVertex(p)
}

// lookahead is min over neighbours s of cost(v, s) + g(s).
func (e *Engine[T]) lookahead(v int) float64 {
	best := Inf
	for _, s := range e.graph.vertices[v].neighbours {
		if c := e.graph.Cost(v, s) + e.graph.vertices[s].g; c < best {
			best = c
		}
	}

	return best
}

// UpdateVertex keeps v queued iff it is locally inconsistent, refreshing the
// stored key when it no longer matches the current one.
func (e *Engine[T]) UpdateVertex(v int) error {
	if !e.initialized {
		return ErrGraphNotInitialized
	}
	if !e.graph.has(v) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}
	e.updateVertex(v)

	return nil
}

func (e *Engine[T]) updateVertex(v int) {
	vx := &e.graph.vertices[v]
	consistent := approxEqual(vx.g, vx.rhs, e.opts.Epsilon)
	stored, queued := e.frontier.KeyOf(v)

	switch {
	case !consistent && !queued:
		e.frontier.Insert(e.calculateKey(v), v)
	case !consistent && queued:
		if fresh := e.calculateKey(v); !stored.Equal(fresh, e.opts.Epsilon) {
			e.frontier.Update(v, fresh)
		}
	case consistent && queued:
		e.frontier.Remove(v)
	}
}

// RecalculateNode reports that the cost of at least one edge incident to v
// changed. It bumps km by h(start, v), recomputes the one-step lookahead of
// v and each of its neighbours (the goal stays pinned at rhs = 0), and
// replans. Call it once per perturbation; batching several changes behind a
// single call can leave an affected vertex untouched.
func (e *Engine[T]) RecalculateNode(v int) (Result, error) {
	if !e.initialized {
		return Result{Cost: Inf}, ErrGraphNotInitialized
	}
	if !e.graph.has(v) {
		return Result{Cost: Inf}, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	// negative heuristics would break km monotonicity
	e.km += math.Max(0, e.graph.Heuristic(e.start, v))
	for _, s := range e.graph.vertices[v].neighbours {
		e.refresh(s)
	}
	e.refresh(v)

	e.opts.Metrics.Replan()
	e.opts.Logger.WithFields(logrus.Fields{
		"vertex": v,
		"km":     e.km,
	}).Debug("dstarlite: replanning after cost change")

	return e.ComputeShortestPath()
}

// MoveStart re-anchors the search at newStart, e.g. after the agent
// advanced along its route, and replans. km grows by h(oldStart, newStart)
// so keys already queued stay valid lower bounds.
func (e *Engine[T]) MoveStart(newStart int) (Result, error) {
	if !e.initialized {
		return Result{Cost: Inf}, ErrGraphNotInitialized
	}
	if !e.graph.has(newStart) {
		return Result{Cost: Inf}, fmt.Errorf("%w: start %d", ErrUnknownVertex, newStart)
	}
	if newStart != e.start {
		e.km += math.Max(0, e.graph.Heuristic(e.start, newStart))
		e.start = newStart
	}

	e.opts.Metrics.Replan()
	e.opts.Logger.WithFields(logrus.Fields{
		"start": newStart,
		"km":    e.km,
	}).Debug("dstarlite: start moved")

	return e.ComputeShortestPath()
}

func (e *Engine[T]) refresh(v int) {
	if v != e.goal {
		e.graph.vertices[v].rhs = e.lookahead(v)
	}
	e.updateVertex(v)
}

// G returns the believed cost from v to the goal.
func (e *Engine[T]) G(v int) (float64, error) {
	if !e.initialized {
		return Inf, ErrGraphNotInitialized
	}
	if !e.graph.has(v) {
		return Inf, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return e.graph.vertices[v].g, nil
}

// RHS returns the one-step lookahead of v.
func (e *Engine[T]) RHS(v int) (float64, error) {
	if !e.initialized {
		return Inf, ErrGraphNotInitialized
	}
	if !e.graph.has(v) {
		return Inf, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return e.graph.vertices[v].rhs, nil
}

// Consistent reports whether g(v) equals rhs(v) within the engine epsilon.
func (e *Engine[T]) Consistent(v int) (bool, error) {
	if !e.initialized {
		return false, ErrGraphNotInitialized
	}
	if !e.graph.has(v) {
		return false, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}
	vx := &e.graph.vertices[v]

	return approxEqual(vx.g, vx.rhs, e.opts.Epsilon), nil
}

// Start returns the current search start.
func (e *Engine[T]) Start() int { return e.start }

// Goal returns the fixed goal.
func (e *Engine[T]) Goal() int { return e.goal }

// KeyModifier returns km.
func (e *Engine[T]) KeyModifier() float64 { return e.km }

// FrontierLen returns the number of queued inconsistent vertices.
func (e *Engine[T]) FrontierLen() int { return e.frontier.Len() }

// Graph returns the graph the engine searches.
func (e *Engine[T]) Graph() *Graph[T] { return e.graph }

// Epsilon returns the float tolerance in use.
func (e *Engine[T]) Epsilon() float64 { return e.opts.Epsilon }
