package museum

import (
	"sort"
	"sync"

	"github.com/hupe1980/lootsort/core"
)

// State is the collection state of a tracked form.
type State uint8

const (
	StateUntracked State = iota
	StateNew
	StateFound
	StateDisplayed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateFound:
		return "found"
	case StateDisplayed:
		return "displayed"
	default:
		return "untracked"
	}
}

// InMemoryTracker is a process-local MuseumTracker.
//
// Concurrency: protected by RWMutex, so the display refresh may read while a
// collection update is applied.
type InMemoryTracker struct {
	mu     sync.RWMutex
	states map[core.FormID]State
}

var _ core.MuseumTracker = (*InMemoryTracker)(nil)

// NewInMemoryTracker creates an empty tracker.
func NewInMemoryTracker() *InMemoryTracker {
	return &InMemoryTracker{states: make(map[core.FormID]State)}
}

// Set records the state of id. StateUntracked forgets it.
func (m *InMemoryTracker) Set(id core.FormID, s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == StateUntracked {
		delete(m.states, id)
		return
	}
	m.states[id] = s
}

// Track marks every id as new unless it is already tracked.
func (m *InMemoryTracker) Track(ids ...core.FormID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if _, ok := m.states[id]; !ok {
			m.states[id] = StateNew
		}
	}
}

// MarkFound advances a tracked new form to found. It reports whether the
// state changed.
func (m *InMemoryTracker) MarkFound(id core.FormID) bool {
	return m.advance(id, StateNew, StateFound)
}

// MarkDisplayed advances a tracked new or found form to displayed. It
// reports whether the state changed.
func (m *InMemoryTracker) MarkDisplayed(id core.FormID) bool {
	return m.advance(id, StateFound, StateDisplayed) || m.advance(id, StateNew, StateDisplayed)
}

func (m *InMemoryTracker) advance(id core.FormID, from, to State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.states[id] != from {
		return false
	}
	m.states[id] = to
	return true
}

// State returns the collection state of id.
func (m *InMemoryTracker) State(id core.FormID) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[id]
}

func (m *InMemoryTracker) IsNew(id core.FormID) bool       { return m.State(id) == StateNew }
func (m *InMemoryTracker) IsFound(id core.FormID) bool     { return m.State(id) == StateFound }
func (m *InMemoryTracker) IsDisplayed(id core.FormID) bool { return m.State(id) == StateDisplayed }

// IDs returns the tracked identifiers in the given state, ascending.
func (m *InMemoryTracker) IDs(s State) []core.FormID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]core.FormID, 0)
	for id, st := range m.states {
		if st == s {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of tracked forms.
func (m *InMemoryTracker) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}
