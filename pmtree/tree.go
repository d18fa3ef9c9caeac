package pmtree

import (
	"cmp"

	"github.com/parallelalgo/cordon/pdispatch"
)

// Tree is a prefix-minimum segment tree over n leaves, one-indexed with
// children of x at 2x and 2x+1.
type Tree[T cmp.Ordered] struct {
	tree     []T
	n        int
	infinity T
	mode     Mode
	built    bool
	removed  []bool
}

// New allocates a Tree of the given size and mode. infinity must compare
// greater than every real key the tree will ever hold; InfinityFor
// supplies a reasonable default for built-in ordered types.
func New[T cmp.Ordered](n int, infinity T, mode Mode) (*Tree[T], error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	t := &Tree[T]{
		tree:     make([]T, 4*n+4),
		n:        n,
		infinity: infinity,
		mode:     mode,
		removed:  make([]bool, n),
	}
	for i := range t.tree {
		t.tree[i] = infinity
	}
	return t, nil
}

// Len returns the number of leaves.
func (t *Tree[T]) Len() int { return t.n }

// Mode returns the tree's mode.
func (t *Tree[T]) Mode() Mode { return t.mode }

// Infinity returns the sentinel value the tree was built with.
func (t *Tree[T]) Infinity() T { return t.infinity }

// Build populates the tree's leaves from keys and computes every
// internal minimum. keys must have exactly Len() elements.
func (t *Tree[T]) Build(keys []T, policy pdispatch.Policy) error {
	if len(keys) != t.n {
		return ErrLengthMismatch
	}
	t.buildRec(1, 0, t.n-1, keys, policy)
	t.built = true
	return nil
}

func (t *Tree[T]) buildRec(x, l, r int, keys []T, policy pdispatch.Policy) {
	if l == r {
		t.tree[x] = keys[l]
		return
	}
	mid := (l + r) / 2
	policy.Do(r-l,
		func() { t.buildRec(2*x, l, mid, keys, policy) },
		func() { t.buildRec(2*x+1, mid+1, r, keys, policy) },
	)
	t.tree[x] = minOf(t.tree[2*x], t.tree[2*x+1])
}

func minOf[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// GlobalMin returns the minimum key currently held by any leaf that has
// not been removed. Panics if the tree has not been built.
func (t *Tree[T]) GlobalMin() T {
	if !t.built {
		panic(ErrNotBuilt)
	}
	return t.tree[1]
}

// LeftmostMinIndex returns the smallest leaf index whose key equals
// GlobalMin, or -1 if every leaf has been removed. Panics if the tree
// has not been built.
func (t *Tree[T]) LeftmostMinIndex() int {
	if !t.built {
		panic(ErrNotBuilt)
	}
	if t.tree[1] == t.infinity {
		return -1
	}
	return t.leftmostRec(1, 0, t.n-1)
}

func (t *Tree[T]) leftmostRec(x, l, r int) int {
	if l == r {
		return l
	}
	mid := (l + r) / 2
	if t.tree[2*x] <= t.tree[2*x+1] {
		return t.leftmostRec(2*x, l, mid)
	}
	return t.leftmostRec(2*x+1, mid+1, r)
}

// Remove sets leaf i's key to the tree's infinity sentinel, taking it
// out of contention for future GlobalMin/LeftmostMinIndex queries.
// Removing an already-removed leaf is a contract violation and panics.
func (t *Tree[T]) Remove(i int) error {
	if !t.built {
		panic(ErrNotBuilt)
	}
	if i < 0 || i >= t.n {
		return ErrIndexOutOfRange
	}
	if t.removed[i] {
		panic(ErrAlreadyRemoved)
	}
	t.removed[i] = true
	t.updateRec(1, 0, t.n-1, i, t.infinity)
	return nil
}

func (t *Tree[T]) updateRec(x, l, r, pos int, val T) {
	if l == r {
		t.tree[x] = val
		return
	}
	mid := (l + r) / 2
	if pos <= mid {
		t.updateRec(2*x, l, mid, pos, val)
	} else {
		t.updateRec(2*x+1, mid+1, r, pos, val)
	}
	t.tree[x] = minOf(t.tree[2*x], t.tree[2*x+1])
}
