package library

import (
	"context"
	"sync"
)

// Store is the interface for catalog persistence backends.
type Store interface {
	// Get retrieves a snapshot by id. Returns nil, nil when it doesn't exist.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Set stores a snapshot.
	Set(ctx context.Context, snap *Snapshot) error

	// Delete removes a snapshot.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// MemoryStore is an in-process catalog store for single-instance use.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]*Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Snapshot)}
}

// Get retrieves a snapshot by id. Returns nil, nil when it doesn't exist.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snaps[id]
	if !ok {
		return nil, nil
	}
	copied := *snap
	copied.Items = append([]Item(nil), snap.Items...)
	return &copied, nil
}

// Set stores a snapshot.
func (s *MemoryStore) Set(ctx context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *snap
	copied.Items = append([]Item(nil), snap.Items...)
	s.snaps[snap.ID] = &copied
	return nil
}

// Delete removes a snapshot.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, id)
	return nil
}

// Close releases all snapshots.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = make(map[string]*Snapshot)
	return nil
}

var _ Store = (*MemoryStore)(nil)
