// Package segregation provides the Grid type: construction, bounds logic,
// and read-only accessors for the Schelling segregation engine.
//
// The requested population size is truncated to a perfect square:
// side = ⌊√size⌋ and total = side², so the realized population can be
// smaller than requested. This matches the model's original semantics and
// keeps the grid square without padding.
package segregation

import (
	"fmt"
	"math"
	"math/rand"
)

// Grid owns the simulation state. Configuration is immutable after New;
// the cell array is mutated only by Step. Not safe for concurrent use.
type Grid struct {
	side      int
	cells     [][]CellState
	empty     float64 // target fraction of vacant cells
	threshold float64 // minimum similarity ratio for satisfaction
	radius    int     // neighborhood half-width in each direction
	mode      UpdateMode
	rng       *rand.Rand
}

// New constructs a Grid from the four model parameters plus options.
//
//   - size: requested population upper bound; the grid holds ⌊√size⌋² cells.
//   - emptyRatio ∈ [0,1]: probability a cell is sampled Vacant.
//   - similarityThreshold ∈ [0,1]: minimum like-neighbor fraction for
//     an occupant to stay put.
//   - neighborRadius ≥ 1: half-width of the square neighborhood window.
//
// Each cell is drawn independently: P(GroupA)=P(GroupB)=(1−emptyRatio)/2,
// P(Vacant)=emptyRatio. Realized counts are sampled, not exact.
//
// Returns ErrInvalidConfiguration (wrapped with the offending field) when
// any parameter is out of range or an option is invalid.
// Complexity: O(side²) time and memory.
func New(size int, emptyRatio, similarityThreshold float64, neighborRadius int, opts ...Option) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d < 1", ErrInvalidConfiguration, size)
	}
	if emptyRatio < 0 || emptyRatio > 1 {
		return nil, fmt.Errorf("%w: emptyRatio %v outside [0,1]", ErrInvalidConfiguration, emptyRatio)
	}
	if similarityThreshold < 0 || similarityThreshold > 1 {
		return nil, fmt.Errorf("%w: similarityThreshold %v outside [0,1]", ErrInvalidConfiguration, similarityThreshold)
	}
	if neighborRadius < 1 {
		return nil, fmt.Errorf("%w: neighborRadius %d < 1", ErrInvalidConfiguration, neighborRadius)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	side := int(math.Sqrt(float64(size)))
	g := &Grid{
		side:      side,
		cells:     make([][]CellState, side),
		empty:     emptyRatio,
		threshold: similarityThreshold,
		radius:    neighborRadius,
		mode:      o.Mode,
		rng:       rng,
	}

	// i.i.d. sampling, row-major: groups split the occupied mass evenly.
	pGroup := (1 - emptyRatio) / 2
	for row := 0; row < side; row++ {
		g.cells[row] = make([]CellState, side)
		for col := 0; col < side; col++ {
			u := rng.Float64()
			switch {
			case u < pGroup:
				g.cells[row][col] = GroupA
			case u < 2*pGroup:
				g.cells[row][col] = GroupB
			default:
				g.cells[row][col] = Vacant
			}
		}
	}

	return g, nil
}

// Side returns the grid dimension; the grid holds Side()² cells.
// Complexity: O(1).
func (g *Grid) Side() int {
	return g.side
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.side && col >= 0 && col < g.side
}

// Snapshot returns a deep copy of the current cell states for rendering.
// Mutating the returned slices never affects the grid, and subsequent Steps
// never affect the returned slices.
// Complexity: O(side²) time and memory.
func (g *Grid) Snapshot() [][]CellState {
	out := make([][]CellState, g.side)
	for row := 0; row < g.side; row++ {
		out[row] = make([]CellState, g.side)
		copy(out[row], g.cells[row])
	}
	return out
}

// Counts tallies the current occupancy: GroupA cells, GroupB cells, and
// vacant cells. The three always sum to Side()².
// Complexity: O(side²).
func (g *Grid) Counts() (groupA, groupB, vacant int) {
	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			switch g.cells[row][col] {
			case GroupA:
				groupA++
			case GroupB:
				groupB++
			default:
				vacant++
			}
		}
	}
	return groupA, groupB, vacant
}

// index maps (row,col) to a row-major index: row*side + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.side + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.side, idx % g.side
}
