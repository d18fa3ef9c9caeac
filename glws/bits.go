package glws

import (
	"math"
	"sync/atomic"
)

// D is stored as a bit pattern in a slice of atomic.Uint64 cells so that
// relax steps can update it with a lock-free CAS loop. Each Number case
// keeps its own native representation instead of funnelling everything
// through a shared float64: integers keep their two's-complement pattern
// (sign-extended to 64 bits, exact for the full int64 range) and
// float32/float64 keep their own IEEE-754 pattern. Routing int64 through
// float64 bits, as an earlier draft did, silently rounds any magnitude
// past 2^53; this way the round trip is lossless for every case Number
// admits.

func toBits[T Number](v T) uint64 {
	switch x := any(v).(type) {
	case float64:
		return math.Float64bits(x)
	case float32:
		return uint64(math.Float32bits(x))
	case int:
		return uint64(int64(x))
	case int32:
		return uint64(int64(x))
	case int64:
		return uint64(x)
	default:
		panic("glws: unsupported numeric type")
	}
}

func fromBits[T Number](bits uint64) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(math.Float64frombits(bits)).(T)
	case float32:
		return any(math.Float32frombits(uint32(bits))).(T)
	case int:
		return any(int(int64(bits))).(T)
	case int32:
		return any(int32(int64(bits))).(T)
	case int64:
		return any(int64(bits)).(T)
	default:
		panic("glws: unsupported numeric type")
	}
}

// typeExtreme returns T's own maximum representable value (or its
// minimum, when positive is false), the same per-type approach
// pmtree.InfinityFor uses for the segment tree's identity element,
// narrowed to the numeric types Number actually admits.
func typeExtreme[T Number](positive bool) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		if positive {
			return any(math.MaxFloat64).(T)
		}
		return any(-math.MaxFloat64).(T)
	case float32:
		if positive {
			return any(float32(math.MaxFloat32)).(T)
		}
		return any(float32(-math.MaxFloat32)).(T)
	case int:
		if positive {
			return any(int(math.MaxInt)).(T)
		}
		return any(int(math.MinInt)).(T)
	case int32:
		if positive {
			return any(int32(math.MaxInt32)).(T)
		}
		return any(int32(math.MinInt32)).(T)
	case int64:
		if positive {
			return any(int64(math.MaxInt64)).(T)
		}
		return any(int64(math.MinInt64)).(T)
	default:
		panic("glws: unsupported numeric type")
	}
}

// worstValue returns the sentinel every unfinalised D[i] starts at: a
// value less prefers nothing over. Which extreme that is depends on the
// caller's comparator, not just the type, since WithComparator can
// invert the ordering (e.g. to turn Solve into a maximiser). Probing
// less(0, 1) recovers the direction: an ascending comparator (the "<"
// default) wants T's true maximum as the initial worst case, a
// descending one wants T's true minimum, matching how
// std::numeric_limits::max/lowest is chosen against a Compare template
// parameter in the original. Every place this sentinel is observed only
// ever compares it, never adds a cost to it, so using the type's real
// extreme instead of a narrower placeholder never risks overflow.
func worstValue[T Number](less func(a, b T) bool) T {
	return typeExtreme[T](less(0, 1))
}

// atomicMin performs a CAS-loop update of a[i] to val if less(val,
// current) holds, following pdispatch.AtomicMinFloat64's pattern but
// parameterised on the caller's comparator instead of a hardwired "<".
func atomicMin[T Number](a *atomic.Uint64, val T, less func(a, b T) bool) {
	valBits := toBits(val)
	for {
		old := a.Load()
		if !less(val, fromBits[T](old)) {
			return
		}
		if a.CompareAndSwap(old, valBits) {
			return
		}
	}
}
