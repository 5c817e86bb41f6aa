package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/ballarena/combat"
)

var (
	// ErrUnknown is returned when no factory is registered under a name
	ErrUnknown = errors.New("unknown weapon")
	// ErrDuplicate is returned when a name is registered twice
	ErrDuplicate = errors.New("weapon already registered")
	// ErrFrozen is returned when registering after Freeze
	ErrFrozen = errors.New("registry frozen")
)

// Factory builds a weapon for owner and may adjust the owner's body or health
type Factory func(owner *combat.Ball, w *combat.World) combat.Weapon

// Entry holds a factory and its thematic group, empty when ungrouped
type Entry struct {
	Name    string
	Group   string
	Factory Factory
}

// Registry maps variant names to factories
// Populated once at startup, read-only after Freeze
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	frozen  bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a factory under name; duplicates and post-freeze writes are rejected
func (r *Registry) Register(name, group string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("register %q: %w", name, ErrFrozen)
	}
	if factory == nil {
		return fmt.Errorf("register %q: nil factory", name)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicate)
	}
	r.entries[name] = Entry{Name: name, Group: group, Factory: factory}
	return nil
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Get retrieves the entry registered under name
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Create instantiates the named variant for owner and attaches it
func (r *Registry) Create(name string, owner *combat.Ball, w *combat.World) (combat.Weapon, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("create %q: %w", name, ErrUnknown)
	}
	wp := e.Factory(owner, w)
	owner.Weapon = wp
	owner.Variant = name
	return wp, nil
}

// Names returns registered names in the given group, all names when group is empty, sorted
func (r *Registry) Names(group string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name, e := range r.entries {
		if group == "" || e.Group == group {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Groups returns the distinct non-empty group tags, sorted
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, e := range r.entries {
		if e.Group != "" {
			seen[e.Group] = struct{}{}
		}
	}
	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Len returns the number of registered variants
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
