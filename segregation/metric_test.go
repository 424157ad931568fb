package segregation

import (
	"errors"
	"math"
	"testing"
)

// TestMeanSimilarity_Exact checks the hand-computed average on the 2×2
// layout from TestSimilarity_Exact: defined ratios are 1, 1 and 0, so the
// mean is 2/3. (0,0) is undefined and must not contribute.
func TestMeanSimilarity_Exact(t *testing.T) {
	g := testGrid([][]CellState{
		{GroupA, GroupA},
		{GroupA, GroupB},
	}, 0.5, 1)

	got, err := g.MeanSimilarity()
	if err != nil {
		t.Fatalf("MeanSimilarity error: %v", err)
	}
	if want := 2.0 / 3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("MeanSimilarity = %v; want %v", got, want)
	}
}

// TestMeanSimilarity_UndefinedCellsSkipped verifies undefined cells drop out
// of the average entirely: with a vacancy at (0,0), only (1,1) is defined.
func TestMeanSimilarity_UndefinedCellsSkipped(t *testing.T) {
	g := testGrid([][]CellState{
		{Vacant, GroupA},
		{GroupA, GroupB},
	}, 0.5, 1)

	got, err := g.MeanSimilarity()
	if err != nil {
		t.Fatalf("MeanSimilarity error: %v", err)
	}
	if got != 0 {
		t.Errorf("MeanSimilarity = %v; want 0 (only (1,1) defined, ratio 0)", got)
	}
}

// TestMeanSimilarity_NoDefinedNeighborhood covers both degenerate shapes:
// an all-vacant grid and a lone occupant whose window holds only itself.
func TestMeanSimilarity_NoDefinedNeighborhood(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]CellState
	}{
		{"AllVacant", [][]CellState{{Vacant, Vacant}, {Vacant, Vacant}}},
		{"LoneOccupant", [][]CellState{{GroupA}}},
		{"OccupantsSurroundedByVacancy", [][]CellState{
			{GroupA, Vacant, Vacant},
			{Vacant, Vacant, Vacant},
			{Vacant, Vacant, GroupB},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := testGrid(tc.cells, 0.5, 1)
			if _, err := g.MeanSimilarity(); !errors.Is(err, ErrNoDefinedNeighborhood) {
				t.Errorf("MeanSimilarity error = %v; want ErrNoDefinedNeighborhood", err)
			}
		})
	}
}

// TestMeanSimilarity_ReadOnly asserts the metric has no side effects: two
// reads without an intervening Step agree, and the cells are untouched.
func TestMeanSimilarity_ReadOnly(t *testing.T) {
	g, err := New(400, 0.2, 0.4, 3, WithSeed(11))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	before := g.Snapshot()

	first, err := g.MeanSimilarity()
	if err != nil {
		t.Fatalf("MeanSimilarity error: %v", err)
	}
	second, err := g.MeanSimilarity()
	if err != nil {
		t.Fatalf("MeanSimilarity error: %v", err)
	}
	if first != second {
		t.Errorf("repeated reads differ: %v vs %v", first, second)
	}
	if !equalCells(g, before) {
		t.Error("MeanSimilarity mutated the grid")
	}
}

// TestMeanSimilarity_Range samples a spread of configurations and asserts
// the metric, whenever defined, lies in [0,1].
func TestMeanSimilarity_Range(t *testing.T) {
	cases := []struct {
		size   int
		empty  float64
		radius int
	}{
		{100, 0.1, 1},
		{400, 0.3, 2},
		{900, 0.5, 3},
		{2500, 0.7, 4},
	}
	for _, tc := range cases {
		g, err := New(tc.size, tc.empty, 0.4, tc.radius, WithSeed(int64(tc.size)))
		if err != nil {
			t.Fatalf("New(%d) error: %v", tc.size, err)
		}
		m, err := g.MeanSimilarity()
		if errors.Is(err, ErrNoDefinedNeighborhood) {
			continue // sparse sample, metric legitimately unavailable
		}
		if err != nil {
			t.Fatalf("MeanSimilarity error: %v", err)
		}
		if m < 0 || m > 1 {
			t.Errorf("MeanSimilarity = %v outside [0,1] for size=%d empty=%v", m, tc.size, tc.empty)
		}
	}
}
