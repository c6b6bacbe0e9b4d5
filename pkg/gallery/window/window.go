// Package window implements viewport windowing ("virtualization") over a
// computed layout: selecting the subset of items whose bounding box
// intersects the visible scroll region plus a fixed overscan buffer, so the
// renderer only draws what can actually appear on screen.
//
// The filter is a plain O(n) pass with no spatial index. n is the per-view
// item count, not the full library, and the filter is cheap relative to
// render cost, so linear scanning on every scroll tick is acceptable.
package window

import "github.com/mkoester/lightbox/pkg/gallery"

// DefaultBuffer is the default overscan margin in pixels. A larger buffer
// hides pop-in during fast scrolling at the cost of more concurrent renders.
const DefaultBuffer = 400.0

// Visible returns the items whose boxes intersect the range
// [scrollTop-buffer, scrollTop+viewportHeight+buffer]. Header items follow
// the same rule as everything else; sticky-header behavior is layered on top
// by the renderer. The input layout is never mutated; the result is a fresh
// slice sharing no backing storage with it.
func Visible(layout []gallery.LayoutItem, scrollTop, viewportHeight, buffer float64) []gallery.LayoutItem {
	out := make([]gallery.LayoutItem, 0, 64)
	top := scrollTop - buffer
	bottom := scrollTop + viewportHeight + buffer
	for _, it := range layout {
		if it.Y < bottom && it.Y+it.Height > top {
			out = append(out, it)
		}
	}
	return out
}

// Range returns the index span [start, end) of visible items for layouts
// whose items are ordered by ascending Y. It is a convenience for renderers
// that want contiguous slices; layouts with interleaved columns (masonry)
// should use Visible instead.
func Range(layout []gallery.LayoutItem, scrollTop, viewportHeight, buffer float64) (start, end int) {
	top := scrollTop - buffer
	bottom := scrollTop + viewportHeight + buffer
	start = -1
	for i, it := range layout {
		if it.Y < bottom && it.Y+it.Height > top {
			if start == -1 {
				start = i
			}
			end = i + 1
		}
	}
	if start == -1 {
		return 0, 0
	}
	return start, end
}
