package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dstarlite/dstarlite"
	"github.com/katalvlaran/dstarlite/gridgraph"
)

// Version is the only scenario schema version understood.
const Version = "1"

// Load reads, defaults and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes YAML, applies defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := unmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	applyDefaults(&s)
	if err := Validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

func unmarshalStrict(data []byte, s *Scenario) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(s)
}

func applyDefaults(s *Scenario) {
	if s.Grid.Conn == 0 {
		s.Grid.Conn = 4
	}
	if s.Grid.LandThreshold == 0 {
		s.Grid.LandThreshold = 1
	}
}

// Width is the number of columns in the first row.
func (s *Scenario) Width() int {
	if len(s.Grid.Rows) == 0 {
		return 0
	}

	return len(s.Grid.Rows[0])
}

// Height is the number of rows.
func (s *Scenario) Height() int { return len(s.Grid.Rows) }

// Connectivity maps grid.conn onto gridgraph connectivity.
func (s *Scenario) Connectivity() gridgraph.Connectivity {
	if s.Grid.Conn == 8 {
		return gridgraph.Conn8
	}

	return gridgraph.Conn4
}

// GridGraph builds a fresh terrain from the scenario's rows.
// Changes are not applied.
func (s *Scenario) GridGraph() (*gridgraph.GridGraph, error) {
	return gridgraph.NewGridGraph(s.Grid.Rows, gridgraph.GridOptions{
		LandThreshold: s.Grid.LandThreshold,
		Conn:          s.Connectivity(),
	})
}

// PlannerOptions turns the planner section into engine options. Callers
// append their own logger and metrics.
func (s *Scenario) PlannerOptions() []dstarlite.Option {
	var opts []dstarlite.Option
	if s.Planner.MaxIterations > 0 {
		opts = append(opts, dstarlite.WithMaxIterations(s.Planner.MaxIterations))
	}
	if s.Planner.Epsilon != nil {
		opts = append(opts, dstarlite.WithEpsilon(*s.Planner.Epsilon))
	}

	return opts
}

// Terrain returns a copy of the rows with every change applied in order.
// Out-of-range changes are skipped; Validate reports them.
func (s *Scenario) Terrain() [][]int {
	rows := make([][]int, len(s.Grid.Rows))
	for y, row := range s.Grid.Rows {
		rows[y] = append([]int(nil), row...)
	}
	for _, c := range s.Changes {
		if c.Y >= 0 && c.Y < len(rows) && c.X >= 0 && c.X < len(rows[c.Y]) {
			rows[c.Y][c.X] = c.Value
		}
	}

	return rows
}

// Diff lists the cells whose final values (Terrain) differ between two
// scenarios, in row-major order. ok is false when the grids are not comparable cell by
// cell (shape, connectivity or threshold changed) and the terrain must be
// rebuilt instead.
func Diff(old, cur *Scenario) (changes []Change, ok bool) {
	if old.Width() != cur.Width() || old.Height() != cur.Height() ||
		old.Grid.Conn != cur.Grid.Conn || old.Grid.LandThreshold != cur.Grid.LandThreshold {
		return nil, false
	}
	before := old.Terrain()
	for y, row := range cur.Terrain() {
		for x, v := range row {
			if before[y][x] != v {
				changes = append(changes, Change{X: x, Y: y, Value: v})
			}
		}
	}

	return changes, true
}
