package glws

import (
	"sync/atomic"

	"github.com/parallelalgo/cordon/interval"
	"github.com/parallelalgo/cordon/pdispatch"
)

// compress runs the SMAWK-style decision-interval search: given a
// candidate-predecessor range [jl, jr] and a state range [il, ir],
// return the run-length-compressed best-predecessor assignment for
// every state in [il, ir]. Correctness relies on the caller's cost
// function being convex: the optimal predecessor for the midpoint
// state bounds where the optimal predecessor for every other state in
// the range can lie.
func compress[T Number](jl, jr, il, ir int, D []atomic.Uint64, positions []T, cost CostFunc[T], less func(a, b T) bool, policy pdispatch.Policy) []interval.Entry {
	if il > ir {
		return nil
	}
	if il == ir {
		best := bestCandidate(jl, jr, il, D, positions, cost, less)
		return []interval.Entry{{L: il, R: ir, J: best}}
	}

	im := (il + ir) / 2
	best := bestCandidate(jl, jr, im, D, positions, cost, less)

	var left, right []interval.Entry
	policy.Do(ir-il,
		func() { left = compress(jl, best, il, im-1, D, positions, cost, less, policy) },
		func() { right = compress(best, jr, im+1, ir, D, positions, cost, less, policy) },
	)

	result := make([]interval.Entry, 0, len(left)+len(right)+1)
	result = append(result, left...)
	result = append(result, interval.Entry{L: im, R: im, J: best})
	result = append(result, right...)
	return result
}

// bestCandidate linearly scans [jl, jr] for the predecessor minimising
// D[j] + cost(j, i, positions). |jl..jr| stays small in the aggregate
// across the whole solve for convex costs, so the linear scan at each
// recursion leaf is the intended cost, not an oversight.
func bestCandidate[T Number](jl, jr, i int, D []atomic.Uint64, positions []T, cost CostFunc[T], less func(a, b T) bool) int {
	bestJ := jl
	bestVal := fromBits[T](D[jl].Load()) + cost(jl, i, positions)
	for j := jl + 1; j <= jr; j++ {
		val := fromBits[T](D[j].Load()) + cost(j, i, positions)
		if less(val, bestVal) {
			bestVal = val
			bestJ = j
		}
	}
	return bestJ
}
