package scenario

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid")

// Validate checks a defaulted scenario for:
//   - a supported version and connectivity
//   - a non-empty rectangular grid and a positive land threshold
//   - start, goal and every change inside the grid
//   - sane planner tuning
//
// All problems are reported at once.
func Validate(s *Scenario) error {
	if s == nil {
		return fmt.Errorf("%w: nil scenario", ErrInvalidScenario)
	}
	var errs []string
	if s.Version != Version {
		errs = append(errs, fmt.Sprintf("version %q is not supported (want %q)", s.Version, Version))
	}
	if s.Grid.Conn != 4 && s.Grid.Conn != 8 {
		errs = append(errs, fmt.Sprintf("grid.conn must be 4 or 8, got %d", s.Grid.Conn))
	}
	if s.Grid.LandThreshold < 1 {
		errs = append(errs, fmt.Sprintf("grid.land_threshold must be at least 1, got %d", s.Grid.LandThreshold))
	}

	w, h := s.Width(), s.Height()
	switch {
	case h == 0 || w == 0:
		errs = append(errs, "grid.rows must not be empty")
	default:
		for y, row := range s.Grid.Rows {
			if len(row) != w {
				errs = append(errs, fmt.Sprintf("grid.rows[%d] has %d cells, want %d", y, len(row), w))
			}
		}
		inside := func(p Point) bool { return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h }
		if !inside(s.Start) {
			errs = append(errs, fmt.Sprintf("start (%d,%d) is outside the %dx%d grid", s.Start.X, s.Start.Y, w, h))
		}
		if !inside(s.Goal) {
			errs = append(errs, fmt.Sprintf("goal (%d,%d) is outside the %dx%d grid", s.Goal.X, s.Goal.Y, w, h))
		}
		for i, c := range s.Changes {
			if !inside(Point{X: c.X, Y: c.Y}) {
				errs = append(errs, fmt.Sprintf("changes[%d] (%d,%d) is outside the grid", i, c.X, c.Y))
			}
		}
	}

	if s.Planner.MaxIterations < 0 {
		errs = append(errs, fmt.Sprintf("planner.max_iterations must not be negative, got %d", s.Planner.MaxIterations))
	}
	if eps := s.Planner.Epsilon; eps != nil && (*eps < 0 || math.IsNaN(*eps) || math.IsInf(*eps, 0)) {
		errs = append(errs, fmt.Sprintf("planner.epsilon must be a finite non-negative number, got %v", *eps))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidScenario, strings.Join(errs, "\n  - "))
	}

	return nil
}
