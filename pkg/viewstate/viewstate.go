// Package viewstate tracks per-view UI state for grouped gallery layouts,
// most importantly which groups are collapsed.
//
// This package defines a Store interface for state persistence, with
// implementations for different backends:
//   - memory: In-memory storage for a single process
//   - redis: Redis-backed storage for the shared sidecar service
//
// # Architecture
//
// The Manager holds the live collapse state consulted on every relayout.
// Absent groups are expanded; only groups the user explicitly collapsed
// carry an entry. The layout engine receives a snapshot of this map and
// never touches the store itself. Persistence is a collaborator concern:
// callers load a State at view open, hand its Collapsed map to the Manager,
// and save a snapshot back whenever it changes.
//
// # Usage
//
//	mgr := viewstate.NewManager(nil)
//	mgr.Toggle("header:A")          // collapse
//	mgr.Toggle("header:A")          // expand again
//
//	state := viewstate.New()
//	state.Collapsed = mgr.Snapshot()
//	store.Set(ctx, state)
package viewstate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Collapse maps group ids to their collapsed flag. A missing key means the
// group is expanded.
type Collapse map[string]bool

// Clone returns an independent copy.
func (c Collapse) Clone() Collapse {
	out := make(Collapse, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// State is a persistable snapshot of one view's UI state.
type State struct {
	ID        string    `json:"id" bson:"_id"`
	Collapsed Collapse  `json:"collapsed" bson:"collapsed"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// New creates an empty state with a fresh id.
func New() *State {
	return &State{
		ID:        uuid.NewString(),
		Collapsed: make(Collapse),
		UpdatedAt: time.Now(),
	}
}

// Store is the interface for view state persistence backends.
type Store interface {
	// Get retrieves a state by id. Returns nil, nil when it doesn't exist.
	Get(ctx context.Context, id string) (*State, error)

	// Set stores a state.
	Set(ctx context.Context, state *State) error

	// Delete removes a state.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// Manager holds the live collapse state for one open view.
// Safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	collapsed Collapse
}

// NewManager creates a manager seeded with initial state. A nil initial map
// starts with everything expanded.
func NewManager(initial Collapse) *Manager {
	m := &Manager{collapsed: make(Collapse, len(initial))}
	for k, v := range initial {
		if v {
			m.collapsed[k] = true
		}
	}
	return m
}

// Toggle flips the collapsed flag for a group and returns the new value.
// A group never seen before is expanded, so its first toggle collapses it.
func (m *Manager) Toggle(groupID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.collapsed[groupID] {
		delete(m.collapsed, groupID)
		return false
	}
	m.collapsed[groupID] = true
	return true
}

// IsCollapsed reports whether a group is collapsed.
func (m *Manager) IsCollapsed(groupID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collapsed[groupID]
}

// Snapshot returns a copy of the collapse map, suitable for handing to the
// layout engine or persisting.
func (m *Manager) Snapshot() Collapse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collapsed.Clone()
}

// Reset replaces the whole collapse map, e.g. after loading persisted state.
func (m *Manager) Reset(c Collapse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collapsed = make(Collapse, len(c))
	for k, v := range c {
		if v {
			m.collapsed[k] = true
		}
	}
}
