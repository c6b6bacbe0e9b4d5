package viewstate

import (
	"context"
	"testing"
)

func TestManagerToggle(t *testing.T) {
	m := NewManager(nil)

	// Unknown groups are expanded.
	if m.IsCollapsed("header:A") {
		t.Error("fresh group should be expanded")
	}

	// First toggle collapses.
	if got := m.Toggle("header:A"); !got {
		t.Error("first Toggle should collapse")
	}
	if !m.IsCollapsed("header:A") {
		t.Error("group should be collapsed after toggle")
	}

	// Second toggle expands again.
	if got := m.Toggle("header:A"); got {
		t.Error("second Toggle should expand")
	}
	if m.IsCollapsed("header:A") {
		t.Error("group should be expanded after second toggle")
	}
}

func TestManagerSeedAndSnapshot(t *testing.T) {
	m := NewManager(Collapse{"header:A": true, "header:B": false})

	if !m.IsCollapsed("header:A") {
		t.Error("seeded collapsed group lost")
	}
	if m.IsCollapsed("header:B") {
		t.Error("false entries should not collapse")
	}

	snap := m.Snapshot()
	if len(snap) != 1 || !snap["header:A"] {
		t.Errorf("Snapshot = %v, want only header:A", snap)
	}

	// Mutating the snapshot must not leak back into the manager.
	snap["header:C"] = true
	if m.IsCollapsed("header:C") {
		t.Error("snapshot mutation leaked into manager")
	}
}

func TestManagerReset(t *testing.T) {
	m := NewManager(Collapse{"header:A": true})
	m.Reset(Collapse{"header:B": true})

	if m.IsCollapsed("header:A") {
		t.Error("Reset should drop old state")
	}
	if !m.IsCollapsed("header:B") {
		t.Error("Reset should adopt new state")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	// Missing state returns nil, nil.
	got, err := store.Get(ctx, "nope")
	if err != nil || got != nil {
		t.Fatalf("Get missing = %v, %v; want nil, nil", got, err)
	}

	state := New()
	state.Collapsed["header:A"] = true
	if err := store.Set(ctx, state); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, err = store.Get(ctx, state.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil || !got.Collapsed["header:A"] {
		t.Fatalf("Get = %+v, want collapsed header:A", got)
	}

	// Stored state is isolated from later caller mutation.
	got.Collapsed["header:B"] = true
	again, _ := store.Get(ctx, state.ID)
	if again.Collapsed["header:B"] {
		t.Error("store should hold an independent copy")
	}

	if err := store.Delete(ctx, state.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	got, _ = store.Get(ctx, state.ID)
	if got != nil {
		t.Error("deleted state should be gone")
	}
}

func TestNewStateHasID(t *testing.T) {
	a, b := New(), New()
	if a.ID == "" || b.ID == "" {
		t.Fatal("New should assign an id")
	}
	if a.ID == b.ID {
		t.Error("ids should be unique")
	}
	if a.Collapsed == nil {
		t.Error("Collapsed map should be initialized")
	}
}
