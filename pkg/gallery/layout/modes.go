package layout

import (
	"math"

	"github.com/mkoester/lightbox/pkg/gallery"
)

// =============================================================================
// List Mode
// =============================================================================

// computeList places one full-width, fixed-height row per item.
func computeList(in Input) gallery.LayoutResult {
	if len(in.Items) == 0 {
		return gallery.LayoutResult{}
	}

	avail := available(in.width())
	items := make([]gallery.LayoutItem, len(in.Items))
	for i, id := range in.Items {
		items[i] = gallery.LayoutItem{
			ID:     id,
			X:      Padding,
			Y:      Padding + float64(i)*ListRowHeight,
			Width:  avail,
			Height: ListRowHeight,
		}
	}

	return gallery.LayoutResult{
		Layout:      items,
		TotalHeight: Padding + float64(len(in.Items))*ListRowHeight,
	}
}

// =============================================================================
// Grid Mode
// =============================================================================

// computeGrid places items in a strict row/column matrix. Every cell has the
// same width; the height reserves a caption strip under the image.
func computeGrid(in Input) gallery.LayoutResult {
	if len(in.Items) == 0 {
		return gallery.LayoutResult{}
	}

	avail := available(in.width())
	cols := columns(avail, in.cellSize())
	itemWidth := cellWidth(avail, cols)
	itemHeight := itemWidth + CaptionHeight

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

// =============================================================================
// Masonry Mode
// =============================================================================

// computeMasonry packs items greedily into the currently shortest column,
// breaking ties toward the lowest index. Column count and width match grid
// mode; item height follows the aspect ratio plus the caption strip. No
// rebalancing pass is performed.
func computeMasonry(in Input) gallery.LayoutResult {
	if len(in.Items) == 0 {
		return gallery.LayoutResult{}
	}

	avail := available(in.width())
	cols := columns(avail, in.cellSize())
	colWidth := cellWidth(avail, cols)

	colHeights := make([]float64, cols)
	for i := range colHeights {
		colHeights[i] = Padding
	}

	items := make([]gallery.LayoutItem, len(in.Items))
	for i, id := range in.Items {
		imgHeight := colWidth / in.ratio(id)
		itemHeight := imgHeight + CaptionHeight

		col := shortestColumn(colHeights)
		items[i] = gallery.LayoutItem{
			ID:     id,
			X:      Padding + float64(col)*(colWidth+Gap),
			Y:      colHeights[col],
			Width:  colWidth,
			Height: itemHeight,
		}
		colHeights[col] += itemHeight + Gap
	}

	return gallery.LayoutResult{
		Layout:      items,
		TotalHeight: maxHeight(colHeights),
	}
}

// shortestColumn returns the index of the column with minimum height.
// Ties resolve to the lowest index.
func shortestColumn(heights []float64) int {
	min := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[min] {
			min = i
		}
	}
	return min
}

func maxHeight(heights []float64) float64 {
	max := heights[0]
	for _, h := range heights[1:] {
		if h > max {
			max = h
		}
	}
	return max
}
