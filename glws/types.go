package glws

// Number is the constraint on the cost/position element type: whole or
// floating-point, so cost functions can add and compare without a
// caller-supplied arithmetic shim.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// CostFunc computes the cost of covering positions (j, i] with a single
// segment whose predecessor state is j. It must be convex (Monge) in
// (j, i) for the decision-interval compressor's divide-and-conquer
// correctness to hold; violating convexity produces a wrong answer, not
// a crash.
type CostFunc[T Number] func(j, i int, positions []T) T

type options[T Number] struct {
	less func(a, b T) bool
}

// Option configures Solve.
type Option[T Number] func(*options[T])

// WithComparator overrides the default "<" comparator, mirroring
// ConvexGLWS<T, Compare>'s template parameter.
func WithComparator[T Number](less func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		o.less = less
	}
}

func defaultOptions[T Number]() options[T] {
	return options[T]{less: func(a, b T) bool { return a < b }}
}
