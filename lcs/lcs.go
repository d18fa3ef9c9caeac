package lcs

import (
	"github.com/parallelalgo/cordon/pdispatch"
	"github.com/parallelalgo/cordon/pmtree"
)

// SolveFromArrows returns the length of the longest common subsequence
// implied by arrows: row i must list, ascending, every position in the
// (implicit) second sequence where the two sequences' i'th element
// recurs. BuildArrows constructs this from two concrete sequences.
//
// Internally this builds an ArrowHeadIndexed prefix-minimum tree over
// the arrow heads and repeatedly calls PrefixMinCascade with the tree's
// own infinity sentinel as the threshold, counting rounds until the
// tree's global minimum is itself infinity. A row's index is fixed, so
// it can supply at most one match to any chain; once a row uniquely
// holds the round's minimum the cascade is free to drain every
// remaining entry of that row in a single pass without ever losing a
// usable match. The round count is exactly the length of the longest
// chain of matches strictly increasing in both row and column, i.e. the
// LCS length.
func SolveFromArrows(arrows [][]int, parallel bool, granularity int) (int, error) {
	n := len(arrows)
	if n == 0 {
		return 0, nil
	}
	for _, row := range arrows {
		for k := 1; k < len(row); k++ {
			if row[k] <= row[k-1] {
				return 0, ErrArrowsNotSorted
			}
		}
	}

	policy, err := pdispatch.NewPolicy(parallel, granularity)
	if err != nil {
		return 0, err
	}

	infinity := pmtree.InfinityFor[int]()
	tree, err := pmtree.New(n, infinity, pmtree.ArrowHeadIndexed)
	if err != nil {
		return 0, err
	}

	heads := make([]int, n)
	for i, row := range arrows {
		if len(row) == 0 {
			heads[i] = infinity
		} else {
			heads[i] = row[0]
		}
	}
	if err := tree.Build(heads, policy); err != nil {
		return 0, err
	}

	now := make([]int, n)
	round := 0
	for tree.GlobalMin() < infinity {
		round++
		if err := tree.PrefixMinCascade(infinity, arrows, now, policy); err != nil {
			return 0, err
		}
	}
	return round, nil
}

// Solve returns the length of the longest common subsequence of a and b.
func Solve[T comparable](a, b []T, parallel bool, granularity int) (int, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil
	}
	return SolveFromArrows(BuildArrows(a, b), parallel, granularity)
}

// Reference is a naive O(n*m) baseline used only to cross-check Solve in
// tests.
func Reference[T comparable](a, b []T) int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] > dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[n][m]
}
