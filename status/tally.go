package status

import "sync/atomic"

// Tally aggregates integer counts and float sums under string keys
type Tally struct {
	Counts *Table[atomic.Int64]
	Sums   *Table[Float]
}

// NewTally returns an empty tally
func NewTally() *Tally {
	return &Tally{
		Counts: NewTable[atomic.Int64](),
		Sums:   NewTable[Float](),
	}
}

// Inc adds n to the count under key
func (t *Tally) Inc(key string, n int64) {
	t.Counts.Get(key).Add(n)
}

// AddSum adds v to the sum under key
func (t *Tally) AddSum(key string, v float64) {
	t.Sums.Get(key).Add(v)
}

// Peak raises the value under key to v when v is larger
func (t *Tally) Peak(key string, v float64) {
	t.Sums.Get(key).Raise(v)
}

// Count reads the count under key without creating it
func (t *Tally) Count(key string) int64 {
	if !t.Counts.Has(key) {
		return 0
	}
	return t.Counts.Get(key).Load()
}

// Sum reads the sum under key without creating it
func (t *Tally) Sum(key string) float64 {
	if !t.Sums.Has(key) {
		return 0
	}
	return t.Sums.Get(key).Load()
}
