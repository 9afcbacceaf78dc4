package scenario

// Scenario is the top-level YAML structure of a planning scenario file.
type Scenario struct {
	Version string      `yaml:"version"`
	Grid    GridConf    `yaml:"grid"`
	Start   Point       `yaml:"start"`
	Goal    Point       `yaml:"goal"`
	Planner PlannerConf `yaml:"planner"`
	Changes []Change    `yaml:"changes"`
}

// GridConf describes the terrain.
type GridConf struct {
	Conn          int     `yaml:"conn"`           // 4 or 8; 0 means 4
	LandThreshold int     `yaml:"land_threshold"` // 0 means 1
	Rows          [][]int `yaml:"rows"`
}

// Point is a grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlannerConf holds engine tuning.
type PlannerConf struct {
	MaxIterations int      `yaml:"max_iterations"` // 0 means the engine default
	Epsilon       *float64 `yaml:"epsilon"`        // nil means the engine default
}

// Change sets one cell to a new value; each is followed by one replan.
type Change struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Value int `yaml:"value"`
}
