package lis

import (
	"cmp"
	"sync/atomic"

	"github.com/parallelalgo/cordon/pdispatch"
	"github.com/parallelalgo/cordon/pmtree"
)

// Solve returns the length of the longest strictly increasing
// subsequence of data. Empty input returns 0, nil. parallel and
// granularity control whether and how aggressively the relax phase and
// the underlying segment tree spawn concurrent work; granularity must
// be non-negative.
func Solve[T cmp.Ordered](data []T, parallel bool, granularity int, opts ...Option[T]) (int, error) {
	n := len(data)
	if n == 0 {
		return 0, nil
	}

	cfg := options[T]{}
	for _, o := range opts {
		o(&cfg)
	}
	if !cfg.hasInfinity {
		v, ok := pmtree.InfinityForOK[T]()
		if !ok {
			return 0, ErrUnsupportedType
		}
		cfg.infinity = v
	}

	policy, err := pdispatch.NewPolicy(parallel, granularity)
	if err != nil {
		return 0, err
	}

	tree, err := pmtree.New(n, cfg.infinity, pmtree.KeyIndexed)
	if err != nil {
		return 0, err
	}
	if err := tree.Build(data, policy); err != nil {
		return 0, err
	}

	dp := make([]atomic.Int64, n)
	for i := range dp {
		dp[i].Store(1)
	}
	finalized := make([]bool, n)

	best := 0
	for finalizedCount := 0; finalizedCount < n; finalizedCount++ {
		cordon := tree.LeftmostMinIndex()
		if cordon < 0 {
			break
		}
		cordonValue := data[cordon]
		cordonRank := dp[cordon].Load()
		finalized[cordon] = true

		policy.For(cordon+1, n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				if !finalized[i] && cordonValue < data[i] {
					pdispatch.AtomicMaxInt64(&dp[i], cordonRank+1)
				}
			}
		})

		if int(cordonRank) > best {
			best = int(cordonRank)
		}
		if err := tree.Remove(cordon); err != nil {
			return 0, err
		}
	}
	return best, nil
}

// Reference is a naive O(n^2) baseline used only to cross-check Solve in
// tests.
func Reference[T cmp.Ordered](data []T) int {
	n := len(data)
	if n == 0 {
		return 0
	}
	dp := make([]int, n)
	best := 0
	for i := range data {
		dp[i] = 1
		for j := 0; j < i; j++ {
			if data[j] < data[i] && dp[j]+1 > dp[i] {
				dp[i] = dp[j] + 1
			}
		}
		if dp[i] > best {
			best = dp[i]
		}
	}
	return best
}
