package segregation

// Step advances the simulation by one iteration: every occupant whose
// similarity ratio is defined and below the threshold is relocated to a
// uniformly random vacant cell. Cells are visited in row-major order.
//
// In Sequential mode (the default) the grid mutates in place: an occupant
// relocated earlier in the pass is visible to the satisfaction checks of
// later cells in the same pass. This order dependence is core to the
// model's asymmetric dynamics, not an implementation accident.
//
// In Synchronous mode satisfaction is evaluated against a frozen snapshot
// taken at the start of the pass; relocations still apply one at a time
// against the live grid, so two movers never claim the same vacancy.
//
// Returns ErrNoVacancy if an unhappy occupant is found while no vacant
// cell exists (only possible when emptyRatio was 0, since relocation
// conserves the vacancy count). On failure the pass stops where it is:
// relocations already applied stay applied — best-effort in-place, no
// atomicity across the pass.
//
// Complexity: O(side²·window) satisfaction checks plus O(side²) vacancy
// scan per relocation.
func (g *Grid) Step() error {
	view := g.cells
	if g.mode == Synchronous {
		view = g.Snapshot()
	}
	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			if view[row][col] == Vacant {
				continue
			}
			ratio, defined := g.similarityIn(view, row, col)
			if !defined || ratio >= g.threshold {
				continue
			}
			if err := g.relocate(row, col); err != nil {
				return err
			}
		}
	}
	return nil
}

// relocate moves the occupant at (row,col) to a vacant cell chosen
// uniformly at random from the grid as it stands right now, reflecting all
// prior moves in the pass. The origin becomes Vacant.
// Complexity: O(side²) for the vacancy scan.
func (g *Grid) relocate(row, col int) error {
	vacant := g.vacancies()
	if len(vacant) == 0 {
		return ErrNoVacancy
	}
	target := vacant[g.rng.Intn(len(vacant))]
	tr, tc := g.Coordinate(target)
	g.cells[tr][tc] = g.cells[row][col]
	g.cells[row][col] = Vacant
	return nil
}

// vacancies collects the row-major indices of all currently vacant cells.
// Recomputed fresh at every relocation so the candidate set is exactly
// consistent with the in-place update order.
// Complexity: O(side²).
func (g *Grid) vacancies() []int {
	var out []int
	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			if g.cells[row][col] == Vacant {
				out = append(out, g.index(row, col))
			}
		}
	}
	return out
}
