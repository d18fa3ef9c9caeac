package lcs

import "errors"

var (
	// ErrArrowsNotSorted is returned when a row of an arrows slice
	// passed to SolveFromArrows is not strictly ascending.
	ErrArrowsNotSorted = errors.New("lcs: arrow rows must be strictly ascending")
)
