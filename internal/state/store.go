package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one dispatched action and the state it produced.
type HistoryEntry struct {
	ID           string     `json:"id"`
	ActionType   ActionType `json:"actionType"`
	State        State      `json:"state"`
	DispatchedAt time.Time  `json:"dispatchedAt"` // always UTC
}

// Store is a concurrency-safe holder of the current State. All changes go
// through Dispatch, which applies the reducer and keeps a bounded history of
// the states it produced.
type Store struct {
	mu sync.RWMutex

	current State
	history []HistoryEntry

	// retention configuration
	maxHistory int // max number of history entries (0 = unlimited)

	subscribers []chan State
}

// NewStore creates a Store seeded with the default state.
// If maxHistory is <= 0, history is unlimited.
func NewStore(maxHistory int) *Store {
	return &Store{
		current:    Default(),
		maxHistory: maxHistory,
	}
}

// Dispatch applies the reducer to the current state, records the result in
// the history, and notifies subscribers. It returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()

	s.current = Reduce(s.current, a)

	s.history = append(s.history, HistoryEntry{
		ID:           uuid.NewString(),
		ActionType:   a.Type,
		State:        s.current,
		DispatchedAt: time.Now().UTC(),
	})

	// Enforce retention by count.
	if s.maxHistory > 0 && len(s.history) > s.maxHistory {
		over := len(s.history) - s.maxHistory
		s.history = s.history[over:]
	}

	next := s.current
	subs := append([]chan State(nil), s.subscribers...)
	s.mu.Unlock()

	// Notify outside the lock; a subscriber that is not draining its channel
	// misses updates instead of blocking Dispatch.
	for _, ch := range subs {
		select {
		case ch <- next:
		default:
		}
	}

	return next
}

// Current returns the latest state.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// History returns up to limit entries, newest first. A limit <= 0 returns
// everything retained.
func (s *Store) History(limit int) []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.history)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]HistoryEntry, 0, n)
	for i := len(s.history) - 1; i >= len(s.history)-n; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// Subscribe registers an observer of state replacements. Each dispatch sends
// the resulting state on the returned channel; sends that would block are
// dropped.
func (s *Store) Subscribe() <-chan State {
	ch := make(chan State, 16)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, ch)
	return ch
}
