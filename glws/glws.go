package glws

import (
	"sync"
	"sync/atomic"

	"github.com/parallelalgo/cordon/interval"
	"github.com/parallelalgo/cordon/pdispatch"
)

// Solve returns D[n-1], the minimum total cost of covering positions
// with segments under cost, where cost is assumed convex (Monge) in
// its (j, i) arguments. Empty input and a single position both cost
// zero (nothing to cover), matching original_source/include/glws.h's
// compute, which returns T() for n == 0.
func Solve[T Number](positions []T, cost CostFunc[T], parallel bool, granularity int, opts ...Option[T]) (T, error) {
	var zero T
	n := len(positions)
	if n == 0 {
		return zero, nil
	}

	cfg := defaultOptions[T]()
	for _, o := range opts {
		o(&cfg)
	}
	policy, err := pdispatch.NewPolicy(parallel, granularity)
	if err != nil {
		return zero, err
	}
	if n == 1 {
		return zero, nil
	}

	worst := worstValue(cfg.less)
	D := make([]atomic.Uint64, n)
	for i := range D {
		D[i].Store(toBits(worst))
	}
	D[0].Store(toBits(zero))

	b := interval.New()
	if err := b.Append(1, n-1, 0); err != nil {
		return zero, err
	}

	now := 0
	for now < n-1 {
		cordon := findCordon(now, n, D, positions, cost, b, cfg.less, policy)

		policy.For(now+1, cordon, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				j, ok := b.FindBest(i)
				if !ok {
					continue
				}
				val := fromBits[T](D[j].Load()) + cost(j, i, positions)
				atomicMin(&D[i], val, cfg.less)
			}
		})

		fresh := compress(now+1, cordon-1, cordon, n-1, D, positions, cost, cfg.less, policy)

		merged := interval.New()
		for _, e := range b.Entries() {
			if e.R < cordon {
				if err := merged.Append(e.L, e.R, e.J); err != nil {
					return zero, err
				}
			}
		}
		for _, e := range fresh {
			if err := merged.Append(e.L, e.R, e.J); err != nil {
				return zero, err
			}
		}
		merged.Compact()
		b = merged

		now = cordon - 1
	}
	return fromBits[T](D[n-1].Load()), nil
}

// findCordon probes exponentially growing windows beyond now, doubling
// the window until it finds a boundary beyond which the states
// currently reachable from B (predecessors at or before now) would be
// beaten by a predecessor inside the window itself. Everything short
// of that boundary can be finalised in one parallel pass using the
// unmodified B.
func findCordon[T Number](now, n int, D []atomic.Uint64, positions []T, cost CostFunc[T], b *interval.Set, less func(a, b T) bool, policy pdispatch.Policy) int {
	cordon := n + 1
	var mu sync.Mutex
	for t := 1; ; t++ {
		l := now + (1 << uint(t-1))
		r := now + (1 << uint(t)) - 1
		if r > n-1 {
			r = n - 1
		}
		if l > n-1 {
			return n
		}

		policy.For(l, r+1, func(lo, hi int) {
			local := n + 1
			for j := lo; j < hi; j++ {
				pj, ok := b.FindBest(j)
				if !ok {
					continue
				}
				ej := fromBits[T](D[pj].Load()) + cost(pj, j, positions)
				if !less(ej, fromBits[T](D[j].Load())) {
					continue
				}
				atomicMin(&D[j], ej, less)
				if s := findRipple(j, ej, n, D, positions, cost, b, less); s < local {
					local = s
				}
			}
			mu.Lock()
			if local < cordon {
				cordon = local
			}
			mu.Unlock()
		})

		if cordon <= r+1 {
			if cordon > n {
				return n
			}
			return cordon
		}
		if r >= n-1 {
			return n
		}
	}
}

// beats reports whether j (with tentative value ej) is a strictly
// better predecessor for state i than i's current best assignment in b.
func beats[T Number](j int, ej T, i int, D []atomic.Uint64, positions []T, cost CostFunc[T], b *interval.Set, less func(a, b T) bool) bool {
	var current T
	if pi, ok := b.FindBest(i); ok {
		current = fromBits[T](D[pi].Load()) + cost(pi, i, positions)
	} else {
		current = fromBits[T](D[i].Load())
	}
	return less(ej+cost(j, i, positions), current)
}

// findRipple finds the smallest i whose current best (from B) would
// actually be improved by using j (with value ej) as its predecessor.
// Such an i marks where the current window must stop: j's value cannot
// be trusted as final until its own predecessor question is settled, so
// nothing past it may be finalised yet either.
//
// Under the convexity assumption, beats(j, ej, i, ...) is monotone in i:
// once j starts beating i's current best it keeps beating every later
// state too, the same quadrangle-inequality property SMAWK/Knuth-Yao
// style algorithms rely on to avoid rescanning. That turns the forward
// scan into a binary search for the boundary instead of an O(n) walk.
func findRipple[T Number](j int, ej T, n int, D []atomic.Uint64, positions []T, cost CostFunc[T], b *interval.Set, less func(a, b T) bool) int {
	lo, hi := j+1, n
	for lo < hi {
		mid := (lo + hi) / 2
		if beats(j, ej, mid, D, positions, cost, b, less) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo < n && beats(j, ej, lo, D, positions, cost, b, less) {
		return lo
	}
	return n + 1
}
