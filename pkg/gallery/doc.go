// Package gallery defines the core data model for the lightbox layout engine.
//
// # Overview
//
// Lightbox computes absolute pixel positions for heterogeneous media
// collections (images, folders, tags, people) under several layout
// algorithms, and feeds a viewport-culling layer that keeps render work
// bounded regardless of collection size. This package holds the types shared
// by every stage of that pipeline:
//
//  1. Model: items, groups, and per-item metadata supplied by the item source.
//  2. Layout ([layout]): positions and sizes computed by the layout engine.
//  3. Scheduling ([schedule]): latest-wins dispatch of layout computations.
//  4. Windowing ([window]): viewport filtering of computed layouts.
//
// # Pipeline
//
// A typical computation:
//
//	meta := lib.Metadata()
//	res := gallery.NewRatioResolver()
//	ratios := res.Resolve(lib.Revision(), lib.ItemIDs(), meta)
//
//	result, err := layout.Compute(layout.Input{
//	    Items:          lib.ItemIDs(),
//	    Ratios:         ratios,
//	    Mode:           gallery.ModeAdaptive,
//	    ContainerWidth: 1280,
//	    CellSize:       200,
//	})
//
//	visible := window.Visible(result.Layout, scrollTop, viewportHeight, window.DefaultBuffer)
//
// All serialization types carry both json and bson tags so the same structs
// back the sidecar API, layout files on disk, and the MongoDB catalog store.
//
// # Subpackages
//
//   - [layout]: The layout engine (list, grid, adaptive, masonry, grouped modes).
//   - [grouping]: Grouping functions (alphabetic/pinyin buckets, topics, filters).
//   - [schedule]: Per-view latest-wins layout scheduler.
//   - [window]: Viewport windowing over computed layouts.
//
// [layout]: github.com/mkoester/lightbox/pkg/gallery/layout
// [grouping]: github.com/mkoester/lightbox/pkg/gallery/grouping
// [schedule]: github.com/mkoester/lightbox/pkg/gallery/schedule
// [window]: github.com/mkoester/lightbox/pkg/gallery/window
package gallery
