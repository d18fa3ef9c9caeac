/*
Package glws solves the convex Generalized Least-Weight Subsequence
problem: given n positions and a convex (Monge) cost function over
index pairs, find D[n-1] = min over j<i of D[j] + cost(j, i), computed
in O(n log n) rather than the naive O(n²) DP.

The driver keeps now (the greatest finalised index) and B, a compressed
interval set mapping every unfinalised state to its current best
predecessor. Each round probes exponentially growing windows beyond now
to find the next cordon, finalises every state up to it, then rebuilds
B for the remaining suffix with the SMAWK-style decision-interval
compressor, which exploits convexity to avoid re-scanning every
candidate predecessor for every state.
*/
package glws

