package pdispatch

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGranularityRejectsNegative(t *testing.T) {
	_, err := NewGranularity(-1)
	require.ErrorIs(t, err, ErrNegativeGranularity)
}

func TestNewGranularityAcceptsZeroAndPositive(t *testing.T) {
	g, err := NewGranularity(0)
	require.NoError(t, err)
	require.EqualValues(t, 0, g)

	g, err = NewGranularity(5000)
	require.NoError(t, err)
	require.Equal(t, DefaultGranularity, g)
}

func TestNewPolicyRejectsNegativeGranularity(t *testing.T) {
	_, err := NewPolicy(true, -1)
	require.ErrorIs(t, err, ErrNegativeGranularity)
}

func TestNewPolicyAcceptsZeroGranularity(t *testing.T) {
	p, err := NewPolicy(true, 0)
	require.NoError(t, err)
	require.False(t, p.allows(1_000_000))
}

func TestPolicyDoSequentialWhenBelowGranularity(t *testing.T) {
	p, err := NewPolicy(true, 100)
	require.NoError(t, err)

	var order []int
	p.Do(10, func() { order = append(order, 1) }, func() { order = append(order, 2) })
	require.Equal(t, []int{1, 2}, order)
}

func TestPolicyDoRunsBothSidesWhenParallel(t *testing.T) {
	p, err := NewPolicy(true, 1)
	require.NoError(t, err)

	var left, right int32
	p.Do(1000, func() { atomic.StoreInt32(&left, 1) }, func() { atomic.StoreInt32(&right, 1) })
	require.EqualValues(t, 1, atomic.LoadInt32(&left))
	require.EqualValues(t, 1, atomic.LoadInt32(&right))
}

func TestPolicyForCoversEveryIndexExactlyOnce(t *testing.T) {
	p, err := NewPolicy(true, 3)
	require.NoError(t, err)

	seen := make([]int32, 50)
	p.For(0, len(seen), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, v := range seen {
		require.EqualValues(t, 1, v, "index %d covered %d times", i, v)
	}
}

func TestPolicyAnySequentialShortCircuitsLeftToRight(t *testing.T) {
	p, err := NewPolicy(true, 100)
	require.NoError(t, err)

	var rightCalled bool
	got := p.Any(10, func() bool { return true }, func() bool { rightCalled = true; return false })
	require.True(t, got)
	require.False(t, rightCalled)
}

func TestPolicyAnyParallelFindsTrueOnEitherSide(t *testing.T) {
	p, err := NewPolicy(true, 1)
	require.NoError(t, err)

	require.True(t, p.Any(1000, func() bool { return false }, func() bool { return true }))
	require.True(t, p.Any(1000, func() bool { return true }, func() bool { return false }))
	require.False(t, p.Any(1000, func() bool { return false }, func() bool { return false }))
}

func TestAtomicMaxInt64(t *testing.T) {
	var a atomic.Int64
	a.Store(5)
	AtomicMaxInt64(&a, 3)
	require.EqualValues(t, 5, a.Load())
	AtomicMaxInt64(&a, 9)
	require.EqualValues(t, 9, a.Load())
}

func TestAtomicMinFloat64(t *testing.T) {
	var a atomic.Uint64
	StoreFloat64(&a, 5.5)
	AtomicMinFloat64(&a, 9.9)
	require.InDelta(t, 5.5, LoadFloat64(&a), 1e-9)
	AtomicMinFloat64(&a, 1.1)
	require.InDelta(t, 1.1, LoadFloat64(&a), 1e-9)
}
