package comparator

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned when no comparator is registered under a name.
	ErrNotFound = errors.New("comparator not found")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("comparator already registered")
)

// LookupError reports a configured comparator name that does not resolve.
type LookupError struct {
	Name string `json:"name"`
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("comparator %q: %v", e.Name, ErrNotFound)
}

// Unwrap returns ErrNotFound.
func (e *LookupError) Unwrap() error { return ErrNotFound }

// Registry maps names to comparators. Registration normally happens once
// at startup; lookups are safe for concurrent use.
type Registry struct {
	byName map[string]Comparator
	mu     sync.RWMutex
}

// NewRegistry creates a registry seeded with the builtin comparators.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, c := range Builtins() {
		// builtin names are unique
		_ = r.Register(c)
	}
	return r
}

// NewEmptyRegistry creates a registry without any comparators.
func NewEmptyRegistry() *Registry {
	return &Registry{byName: map[string]Comparator{}}
}

// Register adds c under c.Name(). It fails with ErrDuplicate when the name
// is taken.
func (r *Registry) Register(c Comparator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := c.Name()
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicate)
	}
	r.byName[name] = c
	return nil
}

// Resolve returns the comparator registered under name. An unknown name
// yields a *LookupError.
func (r *Registry) Resolve(name string) (Comparator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return c, nil
}

// ResolveChain resolves every name in order. It returns the first lookup
// failure.
func (r *Registry) ResolveChain(names []string) (Chain, error) {
	chain := make(Chain, 0, len(names))
	for _, n := range names {
		c, err := r.Resolve(n)
		if err != nil {
			return nil, err
		}
		chain = append(chain, c)
	}
	return chain, nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
