// Package segregation defines core types, options, and option constructors
// for the segregation engine of github.com/katalvlaran/schelling.
package segregation

import (
	"fmt"
	"math/rand"
)

// CellState is the three-valued occupancy of a single grid cell.
type CellState uint8

const (
	// Vacant marks an unoccupied cell, eligible as a relocation target.
	Vacant CellState = iota
	// GroupA is the first occupant group.
	GroupA
	// GroupB is the second occupant group.
	GroupB
)

// String returns a short human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	case Vacant:
		return "."
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// UpdateMode selects how Step applies relocations within one pass.
type UpdateMode int

const (
	// Sequential mutates the grid in place: a cell relocated earlier in the
	// pass is visible to the satisfaction checks of later cells. This is the
	// model's classic, order-dependent dynamic.
	Sequential UpdateMode = iota
	// Synchronous evaluates every cell's satisfaction against a frozen
	// snapshot taken at the start of the pass. Relocations still apply one at
	// a time, so two movers never claim the same vacancy.
	Synchronous
)

// Option configures a Grid via functional arguments.
// An invalid Option (e.g. an unknown UpdateMode) is recorded internally and
// surfaced from New as ErrInvalidConfiguration.
type Option func(*Options)

// Options holds tunable parameters beyond the four model parameters.
type Options struct {
	// Mode chooses Sequential or Synchronous stepping.
	Mode UpdateMode

	// Seed seeds the engine's private random source. Seed==0 selects a fixed
	// default seed so the zero value is still deterministic. Ignored when
	// Rand is set.
	Seed int64

	// Rand, when non-nil, is used verbatim as the random source. The caller
	// must not share it with other goroutines while the grid is in use.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Sequential update mode
//   - Seed 0 (the fixed default deterministic stream)
//   - no caller-supplied Rand.
func DefaultOptions() Options {
	return Options{
		Mode: Sequential,
		Seed: 0,
		Rand: nil,
		err:  nil,
	}
}

// WithUpdateMode selects the stepping mode.
func WithUpdateMode(mode UpdateMode) Option {
	return func(o *Options) {
		if mode != Sequential && mode != Synchronous {
			o.err = fmt.Errorf("%w: unknown update mode %d", ErrInvalidConfiguration, mode)
			return
		}
		o.Mode = mode
	}
}

// WithSeed seeds the engine's private deterministic random source.
// Seed 0 maps to a fixed default seed, never to wall-clock time.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a caller-owned random source, taking precedence over
// WithSeed. Passing nil leaves the seed policy in effect.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}
