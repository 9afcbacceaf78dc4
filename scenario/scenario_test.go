package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dstarlite/gridgraph"
	"github.com/katalvlaran/dstarlite/scenario"
)

const corridor = `
version: "1"
grid:
  conn: 8
  land_threshold: 1
  rows:
    - [1, 1, 1]
    - [1, 0, 1]
start: {x: 0, y: 0}
goal:  {x: 2, y: 1}
planner:
  max_iterations: 5000
  epsilon: 1e-6
changes:
  - {x: 1, y: 0, value: 0}
`

func TestParse(t *testing.T) {
	s, err := scenario.Parse([]byte(corridor))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, gridgraph.Conn8, s.Connectivity())
	assert.Equal(t, scenario.Point{X: 2, Y: 1}, s.Goal)
	assert.Equal(t, []scenario.Change{{X: 1, Y: 0, Value: 0}}, s.Changes)
	require.NotNil(t, s.Planner.Epsilon)
	assert.Equal(t, 1e-6, *s.Planner.Epsilon)
	assert.Len(t, s.PlannerOptions(), 2)
}

func TestParse_Defaults(t *testing.T) {
	s, err := scenario.Parse([]byte(`
version: "1"
grid:
  rows: [[1, 1]]
goal: {x: 1, y: 0}
`))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Grid.Conn)
	assert.Equal(t, 1, s.Grid.LandThreshold)
	assert.Equal(t, gridgraph.Conn4, s.Connectivity())
	assert.Empty(t, s.PlannerOptions())
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name, doc, reason string
	}{
		{"Version", `version: "2"
grid: {rows: [[1]]}`, "version"},
		{"Conn", `version: "1"
grid: {conn: 6, rows: [[1]]}`, "grid.conn"},
		{"Threshold", `version: "1"
grid: {land_threshold: -1, rows: [[1]]}`, "land_threshold"},
		{"Empty", `version: "1"
grid: {rows: []}`, "must not be empty"},
		{"Ragged", `version: "1"
grid: {rows: [[1, 1], [1]]}`, "grid.rows[1]"},
		{"StartOutside", `version: "1"
grid: {rows: [[1]]}
start: {x: 1, y: 0}`, "start (1,0)"},
		{"GoalOutside", `version: "1"
grid: {rows: [[1]]}
goal: {x: 0, y: -1}`, "goal (0,-1)"},
		{"ChangeOutside", `version: "1"
grid: {rows: [[1]]}
changes: [{x: 3, y: 3, value: 1}]`, "changes[0]"},
		{"NegativeIterations", `version: "1"
grid: {rows: [[1]]}
planner: {max_iterations: -5}`, "max_iterations"},
		{"NegativeEpsilon", `version: "1"
grid: {rows: [[1]]}
planner: {epsilon: -1}`, "epsilon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestParse_ReportsAllProblems(t *testing.T) {
	_, err := scenario.Parse([]byte(`version: "1"
grid: {conn: 5, rows: [[1]]}
start: {x: 9, y: 9}
goal: {x: 9, y: 9}`))
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Contains(t, err.Error(), "grid.conn")
	assert.Contains(t, err.Error(), "start (9,9)")
	assert.Contains(t, err.Error(), "goal (9,9)")
}

func TestParse_UnknownKeyAndSyntax(t *testing.T) {
	_, err := scenario.Parse([]byte("version: \"1\"\ngird: {rows: [[1]]}\n"))
	assert.Error(t, err)

	_, err = scenario.Parse([]byte("version: [unterminated"))
	assert.Error(t, err)
}

func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, scenario.Validate(nil), scenario.ErrInvalidScenario)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(corridor), 0o644))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	gg, err := s.GridGraph()
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.False(t, gg.Walkable(1, 1))

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	a, err := scenario.Parse([]byte(corridor))
	require.NoError(t, err)
	b, err := scenario.Parse([]byte(corridor))
	require.NoError(t, err)

	changes, ok := scenario.Diff(a, b)
	assert.True(t, ok)
	assert.Empty(t, changes)

	b.Grid.Rows[1][1] = 3
	b.Grid.Rows[0][2] = 0
	changes, ok = scenario.Diff(a, b)
	assert.True(t, ok)
	assert.Equal(t, []scenario.Change{{X: 2, Y: 0, Value: 0}, {X: 1, Y: 1, Value: 3}}, changes)

	b.Grid.Conn = 4
	_, ok = scenario.Diff(a, b)
	assert.False(t, ok, "connectivity change needs a rebuild")

	b.Grid.Conn = 8
	b.Grid.Rows = append(b.Grid.Rows, []int{1, 1, 1})
	_, ok = scenario.Diff(a, b)
	assert.False(t, ok, "shape change needs a rebuild")
}

func TestTerrain(t *testing.T) {
	s, err := scenario.Parse([]byte(corridor))
	require.NoError(t, err)

	rows := s.Terrain()
	assert.Equal(t, [][]int{{1, 0, 1}, {1, 0, 1}}, rows)
	rows[0][0] = 9
	assert.Equal(t, 1, s.Grid.Rows[0][0], "Terrain must copy")

	// Later changes override earlier ones and the rows beneath them.
	b, err := scenario.Parse([]byte(corridor))
	require.NoError(t, err)
	b.Changes = append(b.Changes, scenario.Change{X: 1, Y: 0, Value: 1})
	b.Grid.Rows[0][1] = 0
	changes, ok := scenario.Diff(s, b)
	assert.True(t, ok)
	assert.Equal(t, []scenario.Change{{X: 1, Y: 0, Value: 1}}, changes)
}
