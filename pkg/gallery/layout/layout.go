package layout

import (
	"math"

	"github.com/mkoester/lightbox/pkg/errors"
	"github.com/mkoester/lightbox/pkg/gallery"
)

// =============================================================================
// Constants - Geometry
// =============================================================================

// Shared geometry constants, in pixels.
const (
	// Gap is the inter-item spacing within and between rows/columns.
	Gap = 16.0

	// Padding is the container inset applied to the first row/column origin.
	Padding = 24.0

	// CaptionHeight is the strip reserved under content cells for file names.
	CaptionHeight = 40.0

	// ListRowHeight is the fixed row height in list mode.
	ListRowHeight = 44.0

	// TagHeaderHeight is the full-width header height in the tag overview.
	TagHeaderHeight = 64.0

	// TagCellHeight is the fixed tag-card height in the tag overview.
	TagCellHeight = 100.0

	// PeopleHeaderHeight is the full-width header height in the people overview.
	PeopleHeaderHeight = 48.0

	// PeopleCaptionHeight is the strip reserved under person cells for names.
	PeopleCaptionHeight = 60.0

	// GroupMargin is the vertical margin between groups in grouped views.
	GroupMargin = 32.0

	// FallbackWidth is used when a non-positive container width is submitted
	// despite the caller contract. Degrading to a plausible width keeps the
	// engine total: it never fails on malformed data.
	FallbackWidth = 1280.0

	// DefaultCellSize is the target cell/row size when none is configured.
	DefaultCellSize = 200.0
)

// =============================================================================
// Input
// =============================================================================

// Input carries everything one layout computation depends on. All fields are
// snapshots owned by the caller; Compute never mutates them.
type Input struct {
	// Items is the ordered item ID stream for content and ungrouped people
	// views. Ordering is entirely the caller's responsibility.
	Items []string

	// Ratios maps item ID to width/height aspect ratio. Missing entries
	// default to 1.0. Ignored by fixed-card views (tags, people).
	Ratios map[string]float64

	// Mode selects the algorithm for content views.
	Mode gallery.Mode

	// View selects the view family. Empty defaults to ViewContent.
	View gallery.ViewKind

	// ContainerWidth is the measured width of the scroll container.
	ContainerWidth float64

	// CellSize is the target cell width (grid, masonry, people) or target row
	// height (adaptive). Zero defaults to DefaultCellSize.
	CellSize float64

	// TagGroups maps group key to tag names for the tag overview.
	TagGroups map[string][]string

	// TagFilter is a case-insensitive substring filter applied to tag names
	// before layout. Groups left empty by the filter are dropped entirely.
	TagFilter string

	// Groups is the ordered group list for the grouped people overview.
	// Group IDs are header item IDs (gallery.HeaderID keys) and are emitted
	// as the header layout items without further wrapping.
	Groups []gallery.Group

	// Grouped selects the grouped people sub-mode. When false the people view
	// lays Items out as a flat person grid.
	Grouped bool

	// Collapsed maps group ID (the emitted header item ID) to collapse state
	// for the people overview. Absent entries mean expanded. A collapsed
	// group contributes only its header.
	Collapsed map[string]bool
}

// ratio returns the aspect ratio for an item, defaulting to 1.0.
func (in *Input) ratio(id string) float64 {
	if r, ok := in.Ratios[id]; ok && r > 0 {
		return r
	}
	return gallery.DefaultRatio
}

// width returns the effective container width, applying the documented
// fallback when the caller submitted an unmeasured width anyway.
func (in *Input) width() float64 {
	if in.ContainerWidth <= 0 {
		return FallbackWidth
	}
	return in.ContainerWidth
}

// cellSize returns the effective cell size.
func (in *Input) cellSize() float64 {
	if in.CellSize <= 0 {
		return DefaultCellSize
	}
	return in.CellSize
}

// =============================================================================
// Entry Point
// =============================================================================

// Compute runs one full layout pass and returns positions for every item
// plus the total scrollable height. An empty item stream yields an empty
// result without error; an unknown mode or view kind is a contract violation
// and returns a structured error.
func Compute(in Input) (gallery.LayoutResult, error) {
	view := in.View
	if view == "" {
		view = gallery.ViewContent
	}

	switch view {
	case gallery.ViewContent:
		return computeContent(in)
	case gallery.ViewTags:
		return computeTagOverview(in), nil
	case gallery.ViewPeople:
		return computePeopleOverview(in), nil
	default:
		return gallery.LayoutResult{}, errors.New(errors.ErrCodeInvalidView, "unknown view kind: %q", in.View)
	}
}

func computeContent(in Input) (gallery.LayoutResult, error) {
	switch in.Mode {
	case gallery.ModeList:
		return computeList(in), nil
	case gallery.ModeGrid:
		return computeGrid(in), nil
	case gallery.ModeAdaptive:
		return computeJustified(in), nil
	case gallery.ModeMasonry:
		return computeMasonry(in), nil
	default:
		return gallery.LayoutResult{}, errors.New(errors.ErrCodeInvalidMode, "unknown layout mode: %q", in.Mode)
	}
}

// =============================================================================
// Shared Helpers
// =============================================================================

// available returns the usable width inside the container padding.
func available(width float64) float64 {
	return width - 2*Padding
}

// columns computes the column count for a cell size over the available
// width: as many (cellSize + Gap) slots as fit, at least one.
func columns(availableWidth, cellSize float64) int {
	cols := int(math.Floor((availableWidth + Gap) / (cellSize + Gap)))
	if cols < 1 {
		return 1
	}
	return cols
}

// cellWidth distributes the available width across cols columns.
func cellWidth(availableWidth float64, cols int) float64 {
	return (availableWidth - float64(cols-1)*Gap) / float64(cols)
}
