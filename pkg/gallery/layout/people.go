package layout

import (
	"math"

	"github.com/mkoester/lightbox/pkg/gallery"
)

// computePeopleOverview lays out person cards. Ungrouped, it behaves like
// grid mode with a taller caption strip for names. Grouped, each group emits
// a full-width header followed by its members in the same grid sub-layout;
// collapsed groups contribute only their header.
func computePeopleOverview(in Input) gallery.LayoutResult {
	if in.Grouped {
		return computePeopleGrouped(in)
	}
	return computePeopleFlat(in)
}

func computePeopleFlat(in Input) gallery.LayoutResult {
	if len(in.Items) == 0 {
		return gallery.LayoutResult{}
	}

	avail := available(in.width())
	cols := columns(avail, in.cellSize())
	itemWidth := cellWidth(avail, cols)
	itemHeight := itemWidth + PeopleCaptionHeight

	items := make([]gallery.LayoutItem, len(in.Items))
	for i, id := range in.Items {
		row := i / cols
		col := i % cols
		items[i] = gallery.LayoutItem{
			ID:     id,
			X:      Padding + float64(col)*(itemWidth+Gap),
			Y:      Padding + float64(row)*(itemHeight+Gap),
			Width:  itemWidth,
			Height: itemHeight,
		}
	}

	rows := int(math.Ceil(float64(len(in.Items)) / float64(cols)))
	return gallery.LayoutResult{
		Layout:      items,
		TotalHeight: Padding + float64(rows)*(itemHeight+Gap),
	}
}

func computePeopleGrouped(in Input) gallery.LayoutResult {
	avail := available(in.width())
	cols := columns(avail, in.cellSize())
	itemWidth := cellWidth(avail, cols)
	itemHeight := itemWidth + PeopleCaptionHeight

	var items []gallery.LayoutItem
	y := Padding

	for _, group := range in.Groups {
		if len(group.MemberIDs) == 0 {
			continue
		}

		// Group IDs already carry the header namespace; emit them verbatim
		// so collapse keys and layout item IDs stay the same string.
		items = append(items, gallery.LayoutItem{
			ID:     group.ID,
			X:      Padding,
			Y:      y,
			Width:  avail,
			Height: PeopleHeaderHeight,
		})
		y += PeopleHeaderHeight

		if in.Collapsed[group.ID] {
			// Collapsed: header only, no body items, no body height.
			y += GroupMargin
			continue
		}

		for i, id := range group.MemberIDs {
			row := i / cols
			col := i % cols
			items = append(items, gallery.LayoutItem{
				ID:     id,
				X:      Padding + float64(col)*(itemWidth+Gap),
				Y:      y + float64(row)*(itemHeight+Gap),
				Width:  itemWidth,
				Height: itemHeight,
			})
		}

		rows := int(math.Ceil(float64(len(group.MemberIDs)) / float64(cols)))
		y += float64(rows)*(itemHeight+Gap) + GroupMargin
	}

	if len(items) == 0 {
		return gallery.LayoutResult{}
	}
	// GroupMargin separates groups; the last group is not followed by one.
	return gallery.LayoutResult{Layout: items, TotalHeight: y - GroupMargin}
}
