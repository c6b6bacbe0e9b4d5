package layout

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mkoester/lightbox/pkg/gallery"
)

// tagColumnBreakpoints maps container-width thresholds to column counts for
// the tag overview. Widths are compared against the full container width,
// not the padded available width.
var tagColumnBreakpoints = []struct {
	minWidth float64
	cols     int
}{
	{1536, 6},
	{1280, 5},
	{1024, 4},
	{768, 3},
	{0, 2},
}

// tagColumns returns the breakpoint column count for a container width.
func tagColumns(containerWidth float64) int {
	for _, bp := range tagColumnBreakpoints {
		if containerWidth >= bp.minWidth {
			return bp.cols
		}
	}
	return 2
}

// computeTagOverview lays out tag groups: a full-width header per group
// followed by that group's tags in a uniform fixed-height grid. The optional
// filter is a case-insensitive substring match on tag names; groups left
// empty by the filter are dropped entirely, headers included. Groups are
// emitted in ascending locale-aware key order.
func computeTagOverview(in Input) gallery.LayoutResult {
	width := in.width()
	avail := available(width)
	cols := tagColumns(width)
	tagWidth := cellWidth(avail, cols)

	filter := strings.ToLower(in.TagFilter)

	keys := make([]string, 0, len(in.TagGroups))
	for key := range in.TagGroups {
		keys = append(keys, key)
	}
	collate.New(language.Und).SortStrings(keys)

	var items []gallery.LayoutItem
	y := Padding

	for _, key := range keys {
		tags := filterTags(in.TagGroups[key], filter)
		if len(tags) == 0 {
			continue
		}

		items = append(items, gallery.LayoutItem{
			ID:     gallery.HeaderID(key),
			X:      Padding,
			Y:      y,
			Width:  avail,
			Height: TagHeaderHeight,
		})
		y += TagHeaderHeight

		rows := 0
		for i, tag := range tags {
			row := i / cols
			col := i % cols
			items = append(items, gallery.LayoutItem{
				ID:     gallery.TagID(tag),
				X:      Padding + float64(col)*(tagWidth+Gap),
				Y:      y + float64(row)*(TagCellHeight+Gap),
				Width:  tagWidth,
				Height: TagCellHeight,
			})
			rows = row + 1
		}
		y += float64(rows)*(TagCellHeight+Gap) + GroupMargin
	}

	if len(items) == 0 {
		return gallery.LayoutResult{}
	}
	// GroupMargin separates groups; the last group is not followed by one.
	return gallery.LayoutResult{Layout: items, TotalHeight: y - GroupMargin}
}

// filterTags returns the tags whose lowercased name contains the filter.
// An empty filter keeps everything.
func filterTags(tags []string, filter string) []string {
	if filter == "" {
		return tags
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), filter) {
			out = append(out, tag)
		}
	}
	return out
}
