package segregation

import "errors"

var (
	// ErrInvalidConfiguration indicates out-of-range construction parameters.
	ErrInvalidConfiguration = errors.New("segregation: invalid configuration")
	// ErrNoVacancy indicates an unhappy occupant with no vacant cell to move to.
	ErrNoVacancy = errors.New("segregation: no vacant cell available for relocation")
	// ErrNoDefinedNeighborhood indicates the mean similarity metric is undefined
	// because no occupant has another occupant in its neighborhood window.
	ErrNoDefinedNeighborhood = errors.New("segregation: no cell has a defined neighborhood")
)
