package pdispatch

import (
	"github.com/exascience/pargo/parallel"
	"github.com/exascience/pargo/speculative"
)

// Granularity is the width, in elements, below which a divide-and-conquer
// call stops forking and runs sequentially instead. It exists as its own
// type rather than a bare int so the "reject negative, 5000 by default"
// contract has one place to live instead of being re-validated at every
// call site.
type Granularity int

// DefaultGranularity is the threshold callers get when they don't have a
// more specific one in mind: small enough to fork on genuinely large
// inputs, large enough that trivial ones never pay task-spawn overhead.
const DefaultGranularity Granularity = 5000

// NewGranularity validates g and returns it as a Granularity. Negative
// values are rejected; zero is legal and disables forking entirely.
func NewGranularity(g int) (Granularity, error) {
	if g < 0 {
		return 0, ErrNegativeGranularity
	}
	return Granularity(g), nil
}

// Policy is the caller-supplied parallel/granularity contract every
// Cordon entry point accepts. A zero Policy is valid and always runs
// sequentially.
type Policy struct {
	Parallel    bool
	Granularity Granularity
}

// NewPolicy validates granularity and returns the resulting Policy.
// Negative granularity is a configuration error; zero disables spawning
// without being one.
func NewPolicy(parallel bool, granularity int) (Policy, error) {
	g, err := NewGranularity(granularity)
	if err != nil {
		return Policy{}, err
	}
	return Policy{Parallel: parallel, Granularity: g}, nil
}

// Default returns the sequential policy: parallel spawn disabled.
func Default() Policy {
	return Policy{}
}

func (p Policy) allows(width int) bool {
	return p.Parallel && p.Granularity > 0 && width > int(p.Granularity)
}

// Do runs left and right, in parallel when width exceeds the configured
// granularity, sequentially (left, then right) otherwise.
func (p Policy) Do(width int, left, right func()) {
	if !p.allows(width) {
		left()
		right()
		return
	}
	parallel.Do(left, right)
}

// Any evaluates left and right, short-circuiting as soon as one returns
// true when running in parallel. Sequential evaluation always runs left
// before right and short-circuits normally.
func (p Policy) Any(width int, left, right func() bool) bool {
	if !p.allows(width) {
		return left() || right()
	}
	return speculative.Or(left, right)
}

// For recursively halves [lo, hi) until each piece is at or below the
// configured granularity, then invokes body on each piece. Halves run
// in parallel under the same rule as Do.
func (p Policy) For(lo, hi int, body func(lo, hi int)) {
	width := hi - lo
	if width <= 0 {
		return
	}
	if !p.allows(width) {
		body(lo, hi)
		return
	}
	mid := lo + width/2
	p.Do(width, func() { p.For(lo, mid, body) }, func() { p.For(mid, hi, body) })
}
