// Package cordon is your toolbox for parallel work-efficient dynamic
// programming — three classic sequence problems, one shared scheduling
// engine underneath.
//
// 🚀 What is cordon?
//
//	A modern, generics-based library that brings together:
//		• Cordon scheduling: a prefix-minimum segment tree that finalizes
//		  states in dependency order and relaxes their successors in bulk
//		• Longest Increasing Subsequence: lis.Solve, O(n^2) worst case
//		• Longest Common Subsequence: lcs.Solve, driving the same
//		  segment tree's arrow-head cascade directly
//		• Convex Generalized Least-Weight Subsequence: glws.Solve,
//		  batching the DP frontier with exponential probing and a
//		  SMAWK-style decision-interval compressor
//
// ✨ Why choose cordon?
//
//   - Beginner-friendly – three Solve functions, minimal surface area
//   - Rock-solid guarantees – sentinel errors, no panics on bad input
//   - Parallel by choice – every Solve takes a parallel flag and a
//     granularity knob; sequential and parallel runs agree bit-for-bit
//   - Extensible – functional options (lis.WithInfinity,
//     glws.WithComparator) instead of ballooning parameter lists
//
// Under the hood, everything is organized under six subpackages:
//
//	pmtree/   — the prefix-minimum segment tree shared by lis and lcs
//	interval/ — the compressed predecessor-interval map glws schedules over
//	pdispatch/ — the parallel/granularity policy every Solve accepts
//	lis/      — Longest Increasing Subsequence
//	lcs/      — Longest Common Subsequence
//	glws/     — Convex Generalized Least-Weight Subsequence
//
// Quick example, three lines:
//
//	length, _ := lis.Solve([]int{3, 1, 4, 1, 5, 9, 2, 6}, false, 0)
//	// length == 4  ([1 4 5 9] or [1 4 5 6])
//
// Next up: a fourth Cordon-scheduled solver and a benchmark suite comparing
// the parallel driver against the naive O(n^2) baselines each package
// carries for testing.
//
//	go get github.com/parallelalgo/cordon
package cordon
