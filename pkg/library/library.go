// Package library is the item-source collaborator for the layout engine:
// it scans directories into an id -> metadata catalog, persists catalogs,
// and tracks a revision counter that invalidates memoized aspect ratios.
//
// The layout engine itself never touches the filesystem or a database; it
// consumes the maps this package produces.
package library

import (
	"sort"
	"sync"
	"time"

	"github.com/mkoester/lightbox/pkg/gallery"
)

// Library is an in-memory catalog of gallery items. Safe for concurrent use.
// Every mutation bumps the revision, so ratio caches keyed on it stay fresh.
type Library struct {
	mu       sync.RWMutex
	revision uint64
	items    map[string]gallery.Meta
}

// NewLibrary creates an empty catalog at revision 0.
func NewLibrary() *Library {
	return &Library{items: make(map[string]gallery.Meta)}
}

// Revision returns the current mutation counter.
func (l *Library) Revision() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.revision
}

// Len returns the item count.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// SetItem inserts or replaces an item and bumps the revision.
func (l *Library) SetItem(id string, meta gallery.Meta) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[id] = meta
	l.revision++
}

// Remove deletes an item. The revision only moves when something was there.
func (l *Library) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.items[id]; ok {
		delete(l.items, id)
		l.revision++
	}
}

// ItemIDs returns all ids sorted by path, then id, for a stable layout order.
func (l *Library) ItemIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.items))
	for id := range l.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := l.items[ids[i]].Path, l.items[ids[j]].Path
		if pi != pj {
			return pi < pj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Metadata returns a copy of the id -> metadata map.
func (l *Library) Metadata() map[string]gallery.Meta {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]gallery.Meta, len(l.items))
	for id, meta := range l.items {
		out[id] = meta
	}
	return out
}

// Names returns the id -> display name map used by the grouping functions.
func (l *Library) Names() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]string, len(l.items))
	for id, meta := range l.items {
		out[id] = meta.DisplayName()
	}
	return out
}

// Item is one catalog entry in persisted form.
type Item struct {
	ID   string       `json:"id" bson:"item_id"`
	Meta gallery.Meta `json:"meta" bson:"meta"`
}

// Snapshot is a persistable copy of a Library, used by the JSON file format
// and the catalog stores.
type Snapshot struct {
	ID        string    `json:"id" bson:"_id"`
	Revision  uint64    `json:"revision" bson:"revision"`
	Items     []Item    `json:"items" bson:"items"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Snapshot captures the catalog under the given id. Items are ordered the
// same way ItemIDs orders them.
func (l *Library) Snapshot(id string) *Snapshot {
	ids := l.ItemIDs()

	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]Item, 0, len(ids))
	for _, itemID := range ids {
		items = append(items, Item{ID: itemID, Meta: l.items[itemID]})
	}
	return &Snapshot{
		ID:        id,
		Revision:  l.revision,
		Items:     items,
		UpdatedAt: time.Now(),
	}
}

// FromSnapshot rebuilds a Library from persisted form.
func FromSnapshot(s *Snapshot) *Library {
	lib := NewLibrary()
	lib.items = make(map[string]gallery.Meta, len(s.Items))
	for _, item := range s.Items {
		lib.items[item.ID] = item.Meta
	}
	lib.revision = s.Revision
	return lib
}
