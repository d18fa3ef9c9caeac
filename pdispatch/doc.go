/*
Package pdispatch provides the fork-join dispatch policy shared by every
Cordon driver (pmtree, lis, lcs, glws).

Overview

A Policy bundles the two knobs every parallel entry point in this module
takes: whether the caller allows spawning at all, and the granularity below
which a subtree is cheap enough to run sequentially. Every recursive
divide-and-conquer routine in this module - segment tree build, the
prefix-min cascade, the Cordon relax loop, the GLWS decision-interval
compressor - calls Policy.Do (or Policy.For, or Policy.Any) instead of
spawning goroutines directly, so the fork-join substrate lives in exactly
one place.

Concurrency substrate

Do and Any are backed by github.com/exascience/pargo/parallel and
github.com/exascience/pargo/speculative, the same fork-join and
speculative-evaluation library used elsewhere in the retrieval corpus for
divide-and-conquer parallelism over slices. No goroutine pool is hand
rolled here; pargo already solves that problem.

Atomics

AtomicMaxInt64 and AtomicMinFloat64 implement monotone-improving
compare-and-swap loops: a cell only ever grows (AtomicMaxInt64, used for
the dp cells of lis's relax phase) or only ever shrinks
(AtomicMinFloat64), and neither uses a mutex - concurrent writers converge
to the same final value regardless of interleaving. glws does not call
AtomicMinFloat64; it keeps its own comparator-aware CAS loop over the
same bit-reinterpretation technique.
*/
package pdispatch
