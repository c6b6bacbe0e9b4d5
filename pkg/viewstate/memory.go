package viewstate

import (
	"context"
	"sync"
)

// MemoryStore is an in-process state store for single-instance use.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]*State)}
}

// Get retrieves a state by id. Returns nil, nil when it doesn't exist.
func (s *MemoryStore) Get(ctx context.Context, id string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok {
		return nil, nil
	}
	copied := *state
	copied.Collapsed = state.Collapsed.Clone()
	return &copied, nil
}

// Set stores a state.
func (s *MemoryStore) Set(ctx context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *state
	copied.Collapsed = state.Collapsed.Clone()
	s.states[state.ID] = &copied
	return nil
}

// Delete removes a state.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
	return nil
}

// Close releases all states.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[string]*State)
	return nil
}

var _ Store = (*MemoryStore)(nil)
