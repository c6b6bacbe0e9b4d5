// Package render turns computed layouts into artifacts: a JSON layout
// document for programmatic consumers and a standalone SVG preview for
// eyeballing geometry without a UI.
package render

import (
	"github.com/mkoester/lightbox/pkg/errors"
	"github.com/mkoester/lightbox/pkg/gallery"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Render produces one artifact per requested format.
func Render(result gallery.LayoutResult, names map[string]string, formats []string, labels bool) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		switch format {
		case FormatSVG:
			artifacts[format] = RenderSVG(result, WithNames(names), withLabels(labels))
		case FormatJSON:
			data, err := RenderJSON(result)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		}
	}
	return artifacts, nil
}

func withLabels(on bool) SVGOption {
	if on {
		return WithLabels()
	}
	return func(r *svgRenderer) {}
}
