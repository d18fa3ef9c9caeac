package lis

import "errors"

var (
	// ErrUnsupportedType is returned by Solve when T has no built-in
	// infinity sentinel and the caller did not supply one via WithInfinity.
	ErrUnsupportedType = errors.New("lis: no default infinity sentinel for this type, use WithInfinity")
)
