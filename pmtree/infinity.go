package pmtree

import (
	"cmp"
	"math"
	"strings"
)

// InfinityFor returns a sensible default sentinel for T: the type's
// maximum representable value for the built-in ordered numeric types,
// or StringInfinity for strings. Callers with a non-standard T (or who
// need a tighter sentinel, e.g. to bound string comparisons to a known
// alphabet width) should build their own and pass it to New directly.
// It panics if T has no known default; use InfinityForOK to check first.
func InfinityFor[T cmp.Ordered]() T {
	v, ok := InfinityForOK[T]()
	if !ok {
		panic("pmtree: no default infinity sentinel for this type")
	}
	return v
}

// InfinityForOK is InfinityFor without the panic: it reports whether T
// has a known default sentinel.
func InfinityForOK[T cmp.Ordered]() (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		return any(int(math.MaxInt)).(T), true
	case int8:
		return any(int8(math.MaxInt8)).(T), true
	case int16:
		return any(int16(math.MaxInt16)).(T), true
	case int32:
		return any(int32(math.MaxInt32)).(T), true
	case int64:
		return any(int64(math.MaxInt64)).(T), true
	case uint:
		return any(uint(math.MaxUint)).(T), true
	case uint8:
		return any(uint8(math.MaxUint8)).(T), true
	case uint16:
		return any(uint16(math.MaxUint16)).(T), true
	case uint32:
		return any(uint32(math.MaxUint32)).(T), true
	case uint64:
		return any(uint64(math.MaxUint64)).(T), true
	case float32:
		return any(float32(math.MaxFloat32)).(T), true
	case float64:
		return any(math.MaxFloat64).(T), true
	case string:
		return any(StringInfinity(64)).(T), true
	default:
		var z T
		return z, false
	}
}

// StringInfinity returns an ASCII sentinel of width repeated "z"
// characters (64 when width is not positive). It sorts strictly after
// every string shorter than width whose bytes are all at or below 'z';
// strings containing '{', '|', '}', '~' or non-ASCII bytes can sort
// after it.
func StringInfinity(width int) string {
	if width <= 0 {
		width = 64
	}
	return strings.Repeat("z", width)
}
