package render

import (
	"strings"
	"testing"

	"github.com/mkoester/lightbox/pkg/gallery"
)

func sampleResult() gallery.LayoutResult {
	return gallery.LayoutResult{
		Layout: []gallery.LayoutItem{
			{ID: "header:A", X: 24, Y: 24, Width: 400, Height: 48},
			{ID: "a.png", X: 24, Y: 72, Width: 190, Height: 250},
			{ID: "b.png", X: 230, Y: 72, Width: 190, Height: 250},
		},
		TotalHeight: 354,
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(sampleResult()))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Fatalf("missing svg root: %s", svg[:40])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}

	// One background plus one rect per item.
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("rect count = %d, want 4", got)
	}

	// Header band uses the darker fill.
	if !strings.Contains(svg, svgHeaderFill) {
		t.Error("header fill missing")
	}

	// No labels unless requested.
	if strings.Contains(svg, "<text") {
		t.Error("labels rendered without WithLabels")
	}
}

func TestRenderSVGLabels(t *testing.T) {
	names := map[string]string{"a.png": "Beach <Sunset>"}
	svg := string(RenderSVG(sampleResult(), WithNames(names), WithLabels()))

	if !strings.Contains(svg, "Beach &lt;Sunset&gt;") {
		t.Error("label not escaped or missing")
	}
	// Items without a name fall back to their id.
	if !strings.Contains(svg, ">b.png</text>") {
		t.Error("id fallback label missing")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(gallery.LayoutResult{}))
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("empty layout should still produce a valid document")
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	result := sampleResult()
	data, err := RenderJSON(result)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}

	doc, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if doc.ItemCount != 3 || doc.TotalHeight != 354 {
		t.Errorf("doc header = %d/%v", doc.ItemCount, doc.TotalHeight)
	}
	if len(doc.Layout) != 3 || doc.Layout[1].ID != "a.png" {
		t.Errorf("layout = %+v", doc.Layout)
	}
}

func TestRenderFormats(t *testing.T) {
	artifacts, err := Render(sampleResult(), nil, []string{FormatSVG, FormatJSON}, false)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("artifact count = %d, want 2", len(artifacts))
	}
	if len(artifacts[FormatSVG]) == 0 || len(artifacts[FormatJSON]) == 0 {
		t.Error("empty artifact")
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	if _, err := Render(sampleResult(), nil, []string{"png"}, false); err == nil {
		t.Error("unsupported format should error")
	}
}
