package segregation

// window is a clipped rectangular region of the grid: rows [rowLo,rowHi) ×
// cols [colLo,colHi). Both bounds are half-open, matching the model's
// window shape of rows [row−radius, row+radius) around the center.
type window struct {
	rowLo, rowHi int
	colLo, colHi int
}

// size returns the number of cells inside the window.
func (w window) size() int {
	return (w.rowHi - w.rowLo) * (w.colHi - w.colLo)
}

// clampWindow returns the neighborhood window of (row,col): the square
// rows [row−radius, row+radius) × cols [col−radius, col+radius) intersected
// with the grid bounds [0, side). Indices below 0 or at/above side are
// simply excluded — an asymmetric clip near edges and corners, never a
// wraparound and never symmetric padding. The center cell is always inside.
// Complexity: O(1).
func (g *Grid) clampWindow(row, col int) window {
	w := window{
		rowLo: row - g.radius,
		rowHi: row + g.radius,
		colLo: col - g.radius,
		colHi: col + g.radius,
	}
	if w.rowLo < 0 {
		w.rowLo = 0
	}
	if w.rowHi > g.side {
		w.rowHi = g.side
	}
	if w.colLo < 0 {
		w.colLo = 0
	}
	if w.colHi > g.side {
		w.colHi = g.side
	}
	return w
}

// similarity computes the similarity ratio of the occupant at (row,col)
// against the cells slice (the live grid, or a frozen snapshot in
// Synchronous mode). The cell must be non-vacant.
//
// Let windowSize be the cell count of the clipped window, emptyCount the
// vacant cells inside it, and sameCount the same-group cells minus one
// (excluding the occupant itself). The ratio is defined only when the
// window holds at least one other occupant (windowSize != emptyCount+1);
// otherwise defined is false and ratio is meaningless. When defined:
//
//	ratio = sameCount / (windowSize − emptyCount − 1)
//
// Complexity: O(window size).
func (g *Grid) similarityIn(cells [][]CellState, row, col int) (ratio float64, defined bool) {
	race := cells[row][col]
	w := g.clampWindow(row, col)

	emptyCount, sameCount := 0, 0
	for r := w.rowLo; r < w.rowHi; r++ {
		for c := w.colLo; c < w.colHi; c++ {
			switch cells[r][c] {
			case Vacant:
				emptyCount++
			case race:
				sameCount++
			}
		}
	}
	sameCount-- // the window always contains (row,col) itself

	windowSize := w.size()
	if windowSize == emptyCount+1 {
		return 0, false
	}
	return float64(sameCount) / float64(windowSize-emptyCount-1), true
}

// similarity evaluates similarityIn against the live grid.
func (g *Grid) similarity(row, col int) (ratio float64, defined bool) {
	return g.similarityIn(g.cells, row, col)
}
