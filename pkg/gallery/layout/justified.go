package layout

import "github.com/mkoester/lightbox/pkg/gallery"

// computeJustified implements the adaptive (justified) mode: rows of variable
// item count, each row's items uniformly rescaled so the row's total width
// (including internal gaps) exactly fills the available width.
//
// The fill is a one-pass greedy bin-fill with a post-hoc uniform rescale per
// row. Rows are never re-balanced retroactively, so a final row can look
// uneven; a trailing partial row narrower than half the available width is
// left unscaled rather than stretched.
func computeJustified(in Input) gallery.LayoutResult {
	if len(in.Items) == 0 {
		return gallery.LayoutResult{}
	}

	avail := available(in.width())
	targetRowHeight := in.cellSize()

	items := make([]gallery.LayoutItem, 0, len(in.Items))
	y := Padding

	row := make([]rowEntry, 0, 16)
	rowNatural := 0.0 // sum of natural widths in the buffered row

	flush := func(trailing bool) {
		if len(row) == 0 {
			return
		}

		gaps := float64(len(row)-1) * Gap
		scale := (avail - gaps) / rowNatural
		if trailing && rowNatural+gaps < avail/2 {
			// Do not stretch a near-empty last row.
			scale = 1
		}

		rowHeight := targetRowHeight*scale + CaptionHeight
		x := Padding
		for _, e := range row {
			w := e.natural * scale
			items = append(items, gallery.LayoutItem{
				ID:     e.id,
				X:      x,
				Y:      y,
				Width:  w,
				Height: rowHeight,
			})
			x += w + Gap
		}
		y += rowHeight + Gap

		row = row[:0]
		rowNatural = 0
	}

	for i, id := range in.Items {
		natural := targetRowHeight * in.ratio(id)
		row = append(row, rowEntry{id: id, natural: natural})
		rowNatural += natural

		last := i == len(in.Items)-1
		filled := rowNatural+float64(len(row)-1)*Gap >= avail

		if filled {
			flush(false) // filled rows always justify
		} else if last {
			flush(true)
		}
	}

	return gallery.LayoutResult{
		Layout:      items,
		TotalHeight: y,
	}
}

type rowEntry struct {
	id      string
	natural float64
}
