package pmtree

import "github.com/parallelalgo/cordon/pdispatch"

// PrefixMinCascade advances leaf cursors past arrow heads at or below a
// running threshold that starts at pre, in a single top-down tree walk
// that only enters the child holding its parent's minimum (or both
// children, when that minimum lies on the right and the left child is
// within the threshold; the right one then runs under the left child's
// value as its threshold), and updates each touched leaf's
// tree value to its new current arrow head (or infinity
// if the row is exhausted). The LCS round driver calls this once per
// round with pre fixed at the tree's own infinity sentinel, not the
// round's current global minimum: the recursion's own threshold
// tightening at tied children already limits how far each leaf actually
// advances, so passing infinity lets the leaf uniquely holding the
// round's minimum drain every remaining entry in one pass, which is
// exactly correct since a single row can never supply more than one
// match to any subsequence.
//
// arrows[i] must be sorted ascending; now[i] is the number of entries of
// arrows[i] already consumed by previous cascades. Both are mutated in
// place. Only valid in ArrowHeadIndexed mode.
func (t *Tree[T]) PrefixMinCascade(pre T, arrows [][]T, now []int, policy pdispatch.Policy) error {
	if !t.built {
		panic(ErrNotBuilt)
	}
	if t.mode != ArrowHeadIndexed {
		panic(ErrWrongMode)
	}
	if len(arrows) != t.n {
		return ErrArrowsSizeMismatch
	}
	if len(now) != t.n {
		return ErrCursorSizeMismatch
	}
	t.cascadeRec(1, 0, t.n-1, pre, arrows, now, policy)
	return nil
}

// lookahead is how far past the cursor the cascade peeks before
// deciding whether a binary search or a linear scan will resolve the
// new cursor position faster.
const lookahead = 8

func (t *Tree[T]) cascadeRec(x, l, r int, pre T, arrows [][]T, now []int, policy pdispatch.Policy) {
	if t.tree[x] > pre {
		return
	}
	if l == r {
		t.tree[x] = t.advanceLeaf(l, pre, arrows, now)
		return
	}
	mid := (l + r) / 2
	lc, rc := 2*x, 2*x+1
	if t.tree[x] == t.tree[rc] {
		if t.tree[lc] <= pre && t.tree[lc] != t.infinity {
			leftThreshold := t.tree[lc]
			policy.Do(r-l,
				func() { t.cascadeRec(lc, l, mid, pre, arrows, now, policy) },
				func() { t.cascadeRec(rc, mid+1, r, leftThreshold, arrows, now, policy) },
			)
		} else {
			t.cascadeRec(rc, mid+1, r, pre, arrows, now, policy)
		}
	} else {
		t.cascadeRec(lc, l, mid, pre, arrows, now, policy)
	}
	t.tree[x] = minOf(t.tree[lc], t.tree[rc])
}

// advanceLeaf steps leaf i's cursor past every arrow head at or below
// pre and returns the leaf's new tree value.
func (t *Tree[T]) advanceLeaf(i int, pre T, arrows [][]T, now []int) T {
	ys := arrows[i]
	if now[i]+lookahead < len(ys) && ys[now[i]+lookahead] <= pre {
		lo, hi := now[i], len(ys)
		for lo < hi {
			mid := (lo + hi) / 2
			if ys[mid] <= pre {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		now[i] = lo
	} else {
		for now[i] < len(ys) && ys[now[i]] <= pre {
			now[i]++
		}
	}
	if now[i] >= len(ys) {
		return t.infinity
	}
	return ys[now[i]]
}
