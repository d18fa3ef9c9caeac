package lis

import "cmp"

// options holds the knobs Solve accepts beyond the required sequence,
// parallel flag, and granularity.
type options[T cmp.Ordered] struct {
	infinity    T
	hasInfinity bool
}

// Option configures a Solve call.
type Option[T cmp.Ordered] func(*options[T])

// WithInfinity overrides the default "larger than every real element"
// sentinel Solve uses internally. Required for element types pmtree has
// no built-in default for.
func WithInfinity[T cmp.Ordered](v T) Option[T] {
	return func(o *options[T]) {
		o.infinity = v
		o.hasInfinity = true
	}
}
