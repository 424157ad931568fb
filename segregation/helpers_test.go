package segregation

// In-package test helpers: building a Grid with hand-placed cells lets the
// window, satisfaction, and step tests assert exact values instead of
// sampling distributions.

// testGrid wraps a hand-written cell layout in a Grid. The layout must be
// square; rows are row-major, matching Snapshot output.
func testGrid(cells [][]CellState, threshold float64, radius int) *Grid {
	side := len(cells)
	g := &Grid{
		side:      side,
		cells:     make([][]CellState, side),
		threshold: threshold,
		radius:    radius,
		mode:      Sequential,
		rng:       rngFromSeed(0),
	}
	for row := range cells {
		g.cells[row] = make([]CellState, side)
		copy(g.cells[row], cells[row])
	}
	return g
}

// equalCells reports whether the grid's cells match the expected layout.
func equalCells(g *Grid, want [][]CellState) bool {
	if g.side != len(want) {
		return false
	}
	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			if g.cells[row][col] != want[row][col] {
				return false
			}
		}
	}
	return true
}
