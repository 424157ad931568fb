// Package segregation simulates Schelling's model of residential
// segregation on a square 2D grid of three-state cells.
//
// What:
//
//   - Grid holds a side×side array of CellState (GroupA, GroupB, Vacant),
//     populated once at construction by i.i.d. sampling.
//   - Each occupant's satisfaction is the fraction of same-group occupants
//     among the other occupants of its neighborhood window — a square of
//     half-width NeighborRadius, clipped (not wrapped) at the grid edges.
//   - Step relocates every unhappy occupant to a uniformly random vacant
//     cell, in row-major order, mutating the grid in place so that earlier
//     moves in a pass are visible to later satisfaction checks.
//   - MeanSimilarity averages the similarity ratio over all cells where it
//     is defined, giving a scalar convergence metric in [0,1].
//
// Why:
//
//   - Agent-based modeling: the canonical demonstration that mild individual
//     preferences produce strong collective segregation.
//   - Teaching/analysis: deterministic seeded runs make the dynamics
//     reproducible and assertable in tests.
//
// Complexity (side = grid dimension, w = (2·radius)², total = side²):
//
//   - New:            O(total) time, O(total) memory.
//   - Step:           O(total·w) satisfaction checks + O(total) vacancy scan
//     per relocation; memory O(total) only in Synchronous mode.
//   - MeanSimilarity: O(total·w), Memory: O(1).
//
// Options:
//
//   - WithSeed / WithRand: inject the deterministic random source used for
//     both initial sampling and relocation targets.
//   - WithUpdateMode: Sequential (default, in-place) or Synchronous
//     (satisfaction evaluated against a frozen pre-step snapshot).
//
// Errors:
//
//   - ErrInvalidConfiguration: construction parameters out of range.
//   - ErrNoVacancy: an unhappy occupant exists but no vacant cell does.
//   - ErrNoDefinedNeighborhood: no cell has another occupant in its window,
//     so the mean similarity metric is undefined.
//
// A Grid is not safe for concurrent use; one goroutine owns one grid.
package segregation
