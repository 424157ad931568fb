package segregation

// MeanSimilarity returns the average similarity ratio over all cells whose
// ratio is defined (occupied, with at least one other occupant in the
// window). The result is always in [0,1]. Reading the metric never mutates
// the grid: two calls without an intervening Step return identical values.
//
// Returns ErrNoDefinedNeighborhood when zero cells have a defined ratio —
// e.g. an all-vacant grid, or occupants so sparse that every window holds
// only its own center.
//
// Complexity: O(side²·window), Memory: O(1).
func (g *Grid) MeanSimilarity() (float64, error) {
	sum, count := 0.0, 0
	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			if g.cells[row][col] == Vacant {
				continue
			}
			ratio, defined := g.similarity(row, col)
			if !defined {
				continue
			}
			sum += ratio
			count++
		}
	}
	if count == 0 {
		return 0, ErrNoDefinedNeighborhood
	}
	return sum / float64(count), nil
}
