package window

import (
	"fmt"
	"testing"

	"github.com/mkoester/lightbox/pkg/gallery"
)

func column(n int, height, gap float64) []gallery.LayoutItem {
	items := make([]gallery.LayoutItem, n)
	y := 0.0
	for i := range items {
		items[i] = gallery.LayoutItem{
			ID:     fmt.Sprintf("item-%03d", i),
			Y:      y,
			Width:  100,
			Height: height,
		}
		y += height + gap
	}
	return items
}

func TestVisible(t *testing.T) {
	layout := column(100, 100, 16) // items at y = 0, 116, 232, ...

	tests := []struct {
		name           string
		scrollTop      float64
		viewportHeight float64
		buffer         float64
		wantFirst      string
		wantCount      int
	}{
		{
			name:           "top of list no buffer",
			scrollTop:      0,
			viewportHeight: 300,
			buffer:         0,
			wantFirst:      "item-000",
			wantCount:      3, // y=0,116,232 intersect [0,300)
		},
		{
			name:           "buffer adds items above and below",
			scrollTop:      500,
			viewportHeight: 300,
			buffer:         200,
			wantFirst:      "item-002", // y=232, bottom=332 > 300
			wantCount:      7,          // y in (300-h, 1000): 232..928
		},
		{
			name:           "scrolled past the end",
			scrollTop:      1e6,
			viewportHeight: 300,
			buffer:         0,
			wantCount:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(layout, tt.scrollTop, tt.viewportHeight, tt.buffer)
			if len(got) != tt.wantCount {
				t.Fatalf("len(Visible()) = %d, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount > 0 && got[0].ID != tt.wantFirst {
				t.Errorf("first visible = %s, want %s", got[0].ID, tt.wantFirst)
			}
		})
	}
}

// TestVisibleCompleteness: the buffer only ever adds items; everything
// strictly in view at zero buffer stays included for any buffer >= 0.
func TestVisibleCompleteness(t *testing.T) {
	layout := column(200, 80, 16)

	for _, scrollTop := range []float64{0, 250, 777, 5000, 12345} {
		exact := Visible(layout, scrollTop, 600, 0)
		buffered := Visible(layout, scrollTop, 600, DefaultBuffer)

		set := map[string]bool{}
		for _, it := range buffered {
			set[it.ID] = true
		}
		for _, it := range exact {
			if !set[it.ID] {
				t.Errorf("scrollTop=%v: item %s in exact view but missing with buffer", scrollTop, it.ID)
			}
		}
		if len(buffered) < len(exact) {
			t.Errorf("scrollTop=%v: buffer removed items (%d < %d)", scrollTop, len(buffered), len(exact))
		}
	}
}

func TestVisibleDoesNotMutateLayout(t *testing.T) {
	layout := column(10, 100, 16)
	before := layout[3]

	got := Visible(layout, 0, 300, 0)
	if len(got) == 0 {
		t.Fatal("expected visible items")
	}
	got[0].X = 999

	if layout[3] != before {
		t.Error("Visible() shares backing storage with the input layout")
	}
	if layout[0].X == 999 {
		t.Error("mutating the returned slice affected the input")
	}
}

func TestRange(t *testing.T) {
	layout := column(50, 100, 16)

	start, end := Range(layout, 500, 300, 0)
	if start >= end {
		t.Fatalf("Range() = [%d, %d), want non-empty span", start, end)
	}

	want := Visible(layout, 500, 300, 0)
	if got := layout[start:end]; len(got) != len(want) {
		t.Errorf("Range() span length = %d, want %d", len(got), len(want))
	}

	start, end = Range(layout, 1e6, 300, 0)
	if start != 0 || end != 0 {
		t.Errorf("Range() past the end = [%d, %d), want [0, 0)", start, end)
	}
}
