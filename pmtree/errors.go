package pmtree

import "errors"

var (
	// ErrEmptyInput is returned by New when size is not positive.
	ErrEmptyInput = errors.New("pmtree: size must be positive")
	// ErrLengthMismatch is returned by Build when the key slice length
	// does not equal the tree's size.
	ErrLengthMismatch = errors.New("pmtree: key sequence length does not match tree size")
	// ErrIndexOutOfRange is returned by Remove when the index is outside
	// [0, size).
	ErrIndexOutOfRange = errors.New("pmtree: index out of range")
	// ErrArrowsSizeMismatch is returned by PrefixMinCascade when the
	// arrows slice length does not equal the tree's size.
	ErrArrowsSizeMismatch = errors.New("pmtree: arrows length does not match tree size")
	// ErrCursorSizeMismatch is returned by PrefixMinCascade when the
	// cursor slice length does not equal the tree's size.
	ErrCursorSizeMismatch = errors.New("pmtree: cursor length does not match tree size")

	// ErrNotBuilt indicates a query or mutation was attempted before
	// Build completed. This is a contract violation, not a legitimate
	// input error, and every operation that can hit it panics with it
	// rather than returning it.
	ErrNotBuilt = errors.New("pmtree: tree has not been built")
	// ErrAlreadyRemoved indicates Remove was called twice on the same
	// leaf. Also a contract violation.
	ErrAlreadyRemoved = errors.New("pmtree: leaf already removed")
	// ErrWrongMode indicates PrefixMinCascade, the ArrowHeadIndexed-only
	// operation, was called on a KeyIndexed tree. The other operations do
	// not check the mode. Also a contract violation.
	ErrWrongMode = errors.New("pmtree: operation not supported in this mode")
)
