package interval

import "errors"

var (
	// ErrEmptyRange is returned by Append when R < L.
	ErrEmptyRange = errors.New("interval: range is empty (R < L)")
	// ErrOverlap is returned by Append when the new range does not sit
	// strictly after every existing entry.
	ErrOverlap = errors.New("interval: ranges must be appended in increasing, non-overlapping order")
	// ErrNotCompacted is returned by Validate when two adjacent runs
	// share a predecessor and abut, meaning they should have been merged.
	ErrNotCompacted = errors.New("interval: adjacent runs share a predecessor and were not merged")
)
