// Package status keeps concurrent tallies shared by batch match runners
package status

import (
	"sort"
	"sync"
)

// Table maps keys to lazily created values of T
// Creation takes the lock, callers keep the returned pointer for lock-free updates
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewTable returns an empty table
func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the value for key, allocating it on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.RLock()
	if ptr, ok := t.items[key]; ok {
		t.mu.RUnlock()
		return ptr
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another writer may have created it between the locks
	if ptr, ok := t.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	t.items[key] = ptr
	return ptr
}

// Has reports whether key was ever requested
func (t *Table[T]) Has(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.items[key]
	return ok
}

// Range visits every entry in key order
func (t *Table[T]) Range(fn func(key string, ptr *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, t.items[k])
	}
}

// Len returns the number of entries
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
