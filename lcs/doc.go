/*
Package lcs computes the length of the longest common subsequence of two
sequences by driving a prefix-minimum segment tree's arrow-head cascade
directly: build one row per element of the first sequence listing the
ascending positions in the second sequence where it recurs
(BuildArrows), seed a tree over the current head of each row, and
repeatedly cascade every leaf past the tree's own infinity sentinel
until the whole tree reads infinity. The number of cascades run is the
LCS length.

A row's index is fixed, so it can contribute at most one match to any
chain of strictly increasing (row, column) pairs. That is what makes it
safe for a single cascade to drain a row past every one of its
remaining heads the first time the row holds the round's minimum,
rather than advancing it one head at a time: the row only ever had one
match to give, and the round in which it gives it up is the round that
counts.
*/
package lcs
