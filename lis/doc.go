/*
Package lis computes the length of the longest strictly increasing
subsequence of a sequence, using the Cordon scheduling pattern: repeatedly
extract the not-yet-finalized element with the smallest value (the
leftmost one on ties), relax every later, larger element against it in
parallel, then remove it from a prefix-minimum segment tree.

The DP recurrence is the usual one - dp[i] = 1 + max(dp[j]) over j < i
with data[j] < data[i] - but instead of computing it index by index, this
driver processes indices in order of increasing element value, so every
smaller predecessor of an element is finalized before the element itself.
That makes the relax phase embarrassingly parallel and lets each element
be finalized (and removed from the tree) exactly once.
*/
package lis
