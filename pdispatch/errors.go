package pdispatch

import "errors"

var (
	// ErrNegativeGranularity is returned by NewPolicy when the caller
	// supplies a negative granularity. Zero is legal and simply disables
	// parallel spawn.
	ErrNegativeGranularity = errors.New("pdispatch: granularity must not be negative")
)
