package gallery

import (
	"strings"
	"time"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Mode selects the layout algorithm for a view.
type Mode string

// Layout modes.
const (
	ModeList     Mode = "list"
	ModeGrid     Mode = "grid"
	ModeAdaptive Mode = "adaptive"
	ModeMasonry  Mode = "masonry"
)

// Valid reports whether m is a known layout mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeList, ModeGrid, ModeAdaptive, ModeMasonry:
		return true
	}
	return false
}

// ViewKind selects the view family a layout is computed for. Content views
// lay out files and folders; tag and people views use the grouped layouts.
type ViewKind string

// View kinds.
const (
	ViewContent ViewKind = "content"
	ViewTags    ViewKind = "tags"
	ViewPeople  ViewKind = "people"
)

// Valid reports whether v is a known view kind.
func (v ViewKind) Valid() bool {
	switch v {
	case ViewContent, ViewTags, ViewPeople:
		return true
	}
	return false
}

// ItemKind classifies an item in the model.
type ItemKind string

// Item kinds.
const (
	KindImage  ItemKind = "image"
	KindFolder ItemKind = "folder"
	KindTag    ItemKind = "tag"
	KindPerson ItemKind = "person"
	KindHeader ItemKind = "header"
)

// Synthetic ID prefixes. Tag and header items are not backed by files; their
// identity is derived from the tag name or group key.
const (
	TagIDPrefix    = "tag:"
	HeaderIDPrefix = "header:"
)

// TagID returns the synthetic item ID for a tag name.
func TagID(name string) string { return TagIDPrefix + name }

// HeaderID returns the synthetic item ID for a group header.
func HeaderID(groupKey string) string { return HeaderIDPrefix + groupKey }

// IsTagID reports whether id names a synthetic tag item.
func IsTagID(id string) bool { return strings.HasPrefix(id, TagIDPrefix) }

// IsHeaderID reports whether id names a synthetic group-header item.
func IsHeaderID(id string) bool { return strings.HasPrefix(id, HeaderIDPrefix) }

// =============================================================================
// Meta - Item Metadata
// =============================================================================

// Meta is the per-item metadata supplied by the item source. Width and Height
// are the natural pixel dimensions of an image and are zero when unknown
// (folders, tags, unprobed files). Timestamps support externally-applied
// sorting; the layout engine itself never sorts.
type Meta struct {
	Kind      ItemKind  `json:"kind" bson:"kind"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Path      string    `json:"path,omitempty" bson:"path,omitempty"`
	Width     int       `json:"width,omitempty" bson:"width,omitempty"`
	Height    int       `json:"height,omitempty" bson:"height,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// DisplayName returns the name if set, otherwise the ID-less best effort
// (callers that only have an ID should pass it through themselves).
func (m Meta) DisplayName() string { return m.Name }

// =============================================================================
// Group - Ordered Item Grouping
// =============================================================================

// Group is an ordered set of item IDs under a common header. When grouping is
// enabled every input item appears in exactly one group; group order is
// deterministic (see the grouping package for bucket ordering rules).
// ID is the synthetic header item ID for the group (HeaderID of the group
// key): the layout engine emits it verbatim as the header item and collapse
// state is keyed by it, so toggling an emitted header toggles the group.
type Group struct {
	ID        string   `json:"id" bson:"id"`
	Title     string   `json:"title" bson:"title"`
	MemberIDs []string `json:"member_ids" bson:"member_ids"`
}

// =============================================================================
// Layout Output
// =============================================================================

// LayoutItem is the computed position and size of a single item, in pixels,
// relative to the scrollable container's top-left origin. Container padding
// is baked into the coordinates.
type LayoutItem struct {
	ID     string  `json:"id" bson:"id"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Bottom returns the y coordinate of the item's lower edge.
func (it LayoutItem) Bottom() float64 { return it.Y + it.Height }

// Right returns the x coordinate of the item's right edge.
func (it LayoutItem) Right() float64 { return it.X + it.Width }

// LayoutResult is the complete output of one layout computation. Results are
// recomputed wholesale on every relevant input change and owned by the
// requesting view; superseded results are discarded, never merged.
type LayoutResult struct {
	Layout      []LayoutItem `json:"layout" bson:"layout"`
	TotalHeight float64      `json:"total_height" bson:"total_height"`
}

// Empty reports whether the result contains no positioned items.
func (r LayoutResult) Empty() bool { return len(r.Layout) == 0 }
