package pdispatch

import (
	"math"
	"sync/atomic"
)

// AtomicMaxInt64 stores max(current, val) into a via a compare-and-swap
// loop. Safe for concurrent callers; the final value does not depend on
// interleaving because the update is monotone (non-decreasing).
func AtomicMaxInt64(a *atomic.Int64, val int64) {
	for {
		old := a.Load()
		if val <= old {
			return
		}
		if a.CompareAndSwap(old, val) {
			return
		}
	}
}

// AtomicMinFloat64 stores min(current, val) into a via a compare-and-swap
// loop over the IEEE-754 bit pattern, the standard technique for atomic
// floating point updates in Go: there is no atomic.Float64, so the value
// is reinterpreted as a uint64 for the CAS and converted back around it.
func AtomicMinFloat64(a *atomic.Uint64, val float64) {
	for {
		old := a.Load()
		if val >= math.Float64frombits(old) {
			return
		}
		if a.CompareAndSwap(old, math.Float64bits(val)) {
			return
		}
	}
}

// LoadFloat64 reads the float64 stored in a bit-reinterpreted atomic cell.
func LoadFloat64(a *atomic.Uint64) float64 {
	return math.Float64frombits(a.Load())
}

// StoreFloat64 writes v into a bit-reinterpreted atomic cell.
func StoreFloat64(a *atomic.Uint64, v float64) {
	a.Store(math.Float64bits(v))
}
