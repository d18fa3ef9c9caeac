/*
Package pmtree implements the prefix-minimum segment tree that backs
the Cordon schedulers whose access pattern is "extract the leftmost
remaining minimum, relax its neighbours, repeat": lis uses it in
KeyIndexed mode, and lcs uses it in ArrowHeadIndexed mode through
PrefixMinCascade. glws's cordon
selection instead advances in batches sized by exponential probing and
rebuilds its predecessor assignment with a SMAWK-style divide-and-conquer
compressor, an access pattern a single-extraction tree doesn't fit, so
it tracks its predecessor intervals with interval.Set instead.

Layout

Tree[T] stores a flat slice of 4n cells, one-indexed, with the children
of cell x at 2x and 2x+1 - the layout a segment tree over an arbitrary,
not-necessarily-power-of-two range needs, since only the range [0, n)
carries real leaves and the rest of the slice is padding.

Modes

A Tree can operate in one of two modes:

  - KeyIndexed: leaf i holds a caller-supplied key, and the tree answers
    GlobalMin / LeftmostMinIndex / Remove queries against those keys.
    This is what lis uses.
  - ArrowHeadIndexed: leaf i tracks a cursor into a per-row list of
    strictly increasing column indices ("arrows"), and PrefixMinCascade
    advances every cursor whose current arrow head is at or below a
    running threshold in a single tree walk. This is what lcs uses, and
    it is only available in this mode.

One generic type parameterized by Mode replaces what would otherwise be
several near-identical tree implementations differing only in which
operations they expose.

Sentinels

Because Go's generics give no way to compute "the maximum value of T"
for an arbitrary ordered type, New takes an explicit infinity value, and
InfinityFor supplies a sensible default for every built-in ordered type
(the numeric type's maximum, or a run of "z" characters for strings).
*/
package pmtree
