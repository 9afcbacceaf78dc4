package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/dstarlite/dstarlite"
	"github.com/katalvlaran/dstarlite/gridgraph"
	"github.com/katalvlaran/dstarlite/metrics"
	"github.com/katalvlaran/dstarlite/scenario"
)

// session owns one grid and one engine planning over it.
type session struct {
	id       string
	logger   log.FieldLogger
	metrics  *metrics.Collector
	out      io.Writer
	scenario *scenario.Scenario
	grid     *gridgraph.GridGraph
	engine   *dstarlite.Engine[gridgraph.Cell]
}

// newSession builds the terrain from rows and plans once.
func newSession(s *scenario.Scenario, rows [][]int, logger log.FieldLogger, m *metrics.Collector, out io.Writer) (*session, error) {
	id := uuid.NewString()
	logger = logger.WithField("session", id)

	gg, err := gridgraph.NewGridGraph(rows, gridgraph.GridOptions{
		LandThreshold: s.Grid.LandThreshold,
		Conn:          s.Connectivity(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "building grid")
	}
	opts := append(s.PlannerOptions(), dstarlite.WithLogger(logger), dstarlite.WithMetrics(m))
	e, err := gg.NewEngine(s.Start.X, s.Start.Y, s.Goal.X, s.Goal.Y, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "building planner")
	}

	ss := &session{id: id, logger: logger, metrics: m, out: out, scenario: s, grid: gg, engine: e}
	res, err := e.ComputeShortestPath()
	if err != nil {
		return nil, errors.Wrap(err, "initial search")
	}
	ss.report("initial", res)

	return ss, nil
}

// applyChanges replays the scenario's change list, one replan per change.
func (ss *session) applyChanges(changes []scenario.Change) error {
	for _, c := range changes {
		res, err := ss.apply(c)
		if err != nil {
			return err
		}
		ss.report(fmt.Sprintf("set (%d,%d)=%d", c.X, c.Y, c.Value), res)
	}

	return nil
}

func (ss *session) apply(c scenario.Change) (dstarlite.Result, error) {
	v, err := ss.grid.SetCell(c.X, c.Y, c.Value)
	if err != nil {
		return dstarlite.Result{}, errors.Wrapf(err, "change (%d,%d)", c.X, c.Y)
	}
	res, err := ss.engine.RecalculateNode(v)
	if err != nil {
		return res, errors.Wrapf(err, "replanning around (%d,%d)", c.X, c.Y)
	}

	return res, nil
}

// update moves the session from old to cur. Cell edits and start moves are
// replanned incrementally; anything else rebuilds the session, which is
// returned in place of ss. ss.scenario only advances to cur once every
// change has been applied.
func (ss *session) update(old, cur *scenario.Scenario) (*session, error) {
	changes, inPlace := scenario.Diff(old, cur)
	if !inPlace || cur.Goal != old.Goal || !reflect.DeepEqual(cur.Planner, old.Planner) {
		ss.logger.Info("scenario changed beyond cell edits; rebuilding planner")
		return newSession(cur, cur.Terrain(), ss.logger.WithField("previous", ss.id), ss.metrics, ss.out)
	}

	var res dstarlite.Result
	for _, c := range changes {
		var err error
		if res, err = ss.apply(c); err != nil {
			return ss, err
		}
	}
	if cur.Start != old.Start {
		var err error
		res, err = ss.engine.MoveStart(ss.grid.Index(cur.Start.X, cur.Start.Y))
		if err != nil {
			return ss, errors.Wrap(err, "moving start")
		}
	}
	ss.scenario = cur
	if len(changes) == 0 && cur.Start == old.Start {
		ss.logger.Debug("scenario reloaded without terrain changes")
		return ss, nil
	}
	ss.report(fmt.Sprintf("reload (%d cells)", len(changes)), res)

	return ss, nil
}

// report prints the outcome of a search and the route it implies.
func (ss *session) report(label string, res dstarlite.Result) {
	cost := "unreachable"
	if res.Reachable() {
		cost = fmt.Sprintf("%g", res.Cost)
	}
	fmt.Fprintf(ss.out, "%s: cost=%s iterations=%d converged=%t\n", label, cost, res.Iterations, res.Converged)

	if !res.Converged {
		fmt.Fprintln(ss.out, "  warning: iteration cap reached; values are best effort")
	}
	if !res.Reachable() {
		ss.explainBlocked()
		return
	}
	route, err := gridgraph.Route(ss.engine)
	if err != nil {
		fmt.Fprintf(ss.out, "  route: unavailable (%v)\n", err)
		return
	}
	fmt.Fprintf(ss.out, "  route: %s\n", ss.cells(route))
}

// explainBlocked lists the fewest blocked cells separating start and goal.
func (ss *session) explainBlocked() {
	path, blocked, err := ss.grid.Breach(ss.engine.Start(), ss.engine.Goal())
	if err != nil {
		ss.logger.WithError(err).Warn("cannot explain unreachable goal")
		return
	}
	var walls []int
	for _, v := range path {
		if x, y := ss.grid.Coordinate(v); !ss.grid.Walkable(x, y) {
			walls = append(walls, v)
		}
	}
	if blocked == 0 {
		fmt.Fprintln(ss.out, "  blocked: none; start and goal are connected but the search did not finish")
		return
	}
	fmt.Fprintf(ss.out, "  blocked: clearing %d cell(s) would reconnect: %s\n", blocked, ss.cells(walls))
}

func (ss *session) cells(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		x, y := ss.grid.Coordinate(v)
		parts[i] = fmt.Sprintf("(%d,%d)", x, y)
	}

	return strings.Join(parts, " ")
}
