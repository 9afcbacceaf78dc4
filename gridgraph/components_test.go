package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = walkable, 0 = blocked):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 components of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” regions.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single component.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}
}

// TestConnectedComponents_Threshold checks that values under LandThreshold block.
func TestConnectedComponents_Threshold(t *testing.T) {
	grid := [][]int{{3, 2, 3}}
	gg, err := NewGridGraph(grid, GridOptions{LandThreshold: 3, Conn: Conn4})
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	if comps := gg.ConnectedComponents(); len(comps) != 2 {
		t.Errorf("got %d components; want 2", len(comps))
	}
}

// TestConnectedComponents_EmptyAndAllBlocked tests edge cases:
//   - completely blocked grid → zero components
//   - single walkable cell → one component of size 1
func TestConnectedComponents_EmptyAndAllBlocked(t *testing.T) {
	gg1, _ := From2D([][]int{{0, 0}, {0, 0}}, Conn4)
	if comps := gg1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all blocked: got %d components; want 0", len(comps))
	}

	gg2, _ := From2D([][]int{{0, 1}}, Conn4)
	comps2 := gg2.ConnectedComponents()
	if len(comps2) != 1 {
		t.Fatalf("single cell: got %d components; want 1", len(comps2))
	}
	if len(comps2[0]) != 1 {
		t.Errorf("single cell: component size = %d; want 1", len(comps2[0]))
	}
}

// TestSameComponent checks reachability through walkable cells only.
func TestSameComponent(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	gg, _ := From2D(grid, Conn4)
	if !gg.SameComponent(gg.Index(0, 0), gg.Index(2, 0)) {
		t.Error("(0,0) and (2,0) should connect around the wall")
	}

	_, _ = gg.SetCell(1, 2, 0)
	if gg.SameComponent(gg.Index(0, 0), gg.Index(2, 0)) {
		t.Error("(0,0) and (2,0) should be separated")
	}
	if gg.SameComponent(gg.Index(1, 0), gg.Index(1, 0)) {
		t.Error("a blocked cell belongs to no component")
	}
	if gg.SameComponent(-1, 0) {
		t.Error("out-of-range index should report false")
	}
}
