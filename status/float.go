package status

import (
	"math"
	"sync/atomic"
)

// Float accumulates fractional match statistics such as damage dealt
// Concurrent matches of a batch write the same key, the zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Add folds delta into the running total and returns it
func (f *Float) Add(delta float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return cur + delta, true })
}

// Raise keeps the larger of the stored value and v, for batch peaks
func (f *Float) Raise(v float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return v, v > cur })
}

// update retries fn against the latest value until the swap lands or fn declines
func (f *Float) update(fn func(cur float64) (float64, bool)) float64 {
	for {
		raw := f.bits.Load()
		cur := math.Float64frombits(raw)
		next, ok := fn(cur)
		if !ok {
			return cur
		}
		if f.bits.CompareAndSwap(raw, math.Float64bits(next)) {
			return next
		}
	}
}
