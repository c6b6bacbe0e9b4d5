package render

import (
	"encoding/json"
	"fmt"

	"github.com/mkoester/lightbox/pkg/gallery"
)

// Document is the JSON artifact schema. It carries the full layout plus the
// counts consumers typically want without walking the array.
type Document struct {
	ItemCount   int                  `json:"item_count"`
	TotalHeight float64              `json:"total_height"`
	Layout      []gallery.LayoutItem `json:"layout"`
}

// RenderJSON produces an indented JSON layout document.
func RenderJSON(result gallery.LayoutResult) ([]byte, error) {
	doc := Document{
		ItemCount:   len(result.Layout),
		TotalHeight: result.TotalHeight,
		Layout:      result.Layout,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout document: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseJSON decodes a layout document produced by RenderJSON.
func ParseJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse layout document: %w", err)
	}
	return doc, nil
}
