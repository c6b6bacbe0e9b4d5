package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/library"
	"github.com/mkoester/lightbox/pkg/pipeline"
)

func testGalleryLibrary() *library.Library {
	lib := library.NewLibrary()
	lib.SetItem("a.png", gallery.Meta{Kind: gallery.KindImage, Name: "a.png", Width: 200, Height: 100})
	lib.SetItem("b.png", gallery.Meta{Kind: gallery.KindImage, Name: "b.png", Width: 100, Height: 200})
	lib.SetItem("c.png", gallery.Meta{Kind: gallery.KindImage, Name: "c.png", Width: 150, Height: 150})
	return lib
}

func TestGalleryModelLayoutRoundTrip(t *testing.T) {
	m := newGalleryModel(testGalleryLibrary(), pipeline.Options{})
	defer m.sched.Close()

	// A window size message triggers the first layout submission.
	model, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = model.(*galleryModel)

	select {
	case result := <-m.sched.Results():
		model, _ = m.Update(layoutMsg(result))
		m = model.(*galleryModel)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not produce a layout")
	}

	if len(m.layout.Layout) != 3 {
		t.Errorf("layout has %d items, want 3", len(m.layout.Layout))
	}
	if m.layout.TotalHeight <= 0 {
		t.Error("layout should have positive total height")
	}
}

func TestGalleryModelModeCycle(t *testing.T) {
	m := newGalleryModel(testGalleryLibrary(), pipeline.Options{})
	defer m.sched.Close()

	m.width = 1280
	m.viewportH = 600

	for i := 0; i < len(modeCycle); i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
		m = model.(*galleryModel)
	}
	// A full cycle lands back on the first mode.
	if m.modeIdx != 0 {
		t.Errorf("modeIdx = %d after full cycle, want 0", m.modeIdx)
	}
	if m.opts.Mode != string(modeCycle[0]) {
		t.Errorf("opts.Mode = %q, want %q", m.opts.Mode, modeCycle[0])
	}
}

func TestGalleryModelScrollClamped(t *testing.T) {
	m := newGalleryModel(testGalleryLibrary(), pipeline.Options{})
	defer m.sched.Close()

	m.viewportH = 600
	m.layout = gallery.LayoutResult{TotalHeight: 1000}

	m.scrollTop = -50
	m.clampScroll()
	if m.scrollTop != 0 {
		t.Errorf("scrollTop = %v, want clamp to 0", m.scrollTop)
	}

	m.scrollTop = 5000
	m.clampScroll()
	if m.scrollTop != 400 {
		t.Errorf("scrollTop = %v, want clamp to 400", m.scrollTop)
	}
}

func TestGalleryModelTopHeader(t *testing.T) {
	m := newGalleryModel(testGalleryLibrary(), pipeline.Options{})
	defer m.sched.Close()

	m.viewportH = 600
	m.layout = gallery.LayoutResult{
		Layout: []gallery.LayoutItem{
			{ID: "a.png", Y: 0, Width: 100, Height: 100},
			{ID: gallery.HeaderID("B"), Y: 120, Width: 400, Height: 64},
			{ID: "b.png", Y: 200, Width: 100, Height: 100},
		},
		TotalHeight: 300,
	}

	if got := m.topHeaderID(); got != gallery.HeaderID("B") {
		t.Errorf("topHeaderID() = %q, want %q", got, gallery.HeaderID("B"))
	}

	// Collapsing toggles through the manager and shows in the view.
	m.mgr.Toggle(gallery.HeaderID("B"))
	m.rows = 20
	if view := m.renderViewport(); !strings.Contains(view, "(collapsed)") {
		t.Error("collapsed header should be marked in the viewport")
	}
}
