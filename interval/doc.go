/*
Package interval implements the run-length compressed predecessor set B
used by the Convex Generalized Least-Weight Subsequence driver.

B maps every not-yet-finalized state i to its current best predecessor j
without storing one entry per state: because the underlying cost function
is convex, the optimal predecessor changes only O(log n) times as i
sweeps left to right, so B is kept as an ordered list of disjoint
{L, R, J} triples meaning "for i in [L, R], the current best predecessor
is J". Adjacent triples that agree on J are merged automatically.
*/
package interval
