package render

import (
	"bytes"
	"fmt"

	"github.com/mkoester/lightbox/pkg/gallery"
)

// SVG preview colors. Headers get a darker band so group structure is
// visible at a glance.
const (
	svgItemFill   = "#e0e0e0"
	svgItemStroke = "#9e9e9e"
	svgHeaderFill = "#bdbdbd"
	svgTextFill   = "#424242"
)

// svgMargin pads the frame so strokes at the edge are not clipped.
const svgMargin = 8.0

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	names  map[string]string
	labels bool
}

// WithNames supplies display names for item labels.
func WithNames(names map[string]string) SVGOption {
	return func(r *svgRenderer) { r.names = names }
}

// WithLabels draws each item's display name (or id) inside its box.
func WithLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = true }
}

// RenderSVG produces a standalone SVG preview of a layout. Every item
// becomes a rectangle at its computed position; synthetic header items
// render as darker full-width bands.
func RenderSVG(result gallery.LayoutResult, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	width := frameWidth(result)
	height := result.TotalHeight + svgMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#fafafa"/>`+"\n", width, height)

	for _, it := range result.Layout {
		fill, stroke := svgItemFill, svgItemStroke
		if gallery.IsHeaderID(it.ID) {
			fill, stroke = svgHeaderFill, svgHeaderFill
		}
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
			it.X, it.Y, it.Width, it.Height, fill, stroke)

		if r.labels {
			renderLabel(&buf, it, r.names)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderLabel(buf *bytes.Buffer, it gallery.LayoutItem, names map[string]string) {
	label := names[it.ID]
	if label == "" {
		label = it.ID
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="%s">%s</text>`+"\n",
		it.X+4, it.Y+14, svgTextFill, escapeText(label))
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// frameWidth derives the frame from the rightmost item edge, so previews of
// any container width come out tight.
func frameWidth(result gallery.LayoutResult) float64 {
	width := 0.0
	for _, it := range result.Layout {
		if right := it.Right(); right > width {
			width = right
		}
	}
	return width + svgMargin
}
