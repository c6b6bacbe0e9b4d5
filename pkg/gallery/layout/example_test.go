package layout_test

import (
	"fmt"

	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/layout"
)

// ExampleCompute lays out three square images in grid mode. At 1280px the
// grid fits eight 140px columns, so all three land in the first row.
func ExampleCompute() {
	result, err := layout.Compute(layout.Input{
		Items:          []string{"a", "b", "c"},
		Mode:           gallery.ModeGrid,
		ContainerWidth: 1280,
		CellSize:       140,
	})
	if err != nil {
		panic(err)
	}

	for _, it := range result.Layout {
		fmt.Printf("%s: x=%.0f y=%.0f w=%.0f h=%.0f\n", it.ID, it.X, it.Y, it.Width, it.Height)
	}
	fmt.Printf("total height: %.0f\n", result.TotalHeight)

	// Output:
	// a: x=24 y=24 w=140 h=180
	// b: x=180 y=24 w=140 h=180
	// c: x=336 y=24 w=140 h=180
	// total height: 220
}

// ExampleCompute_justified shows the adaptive mode stretching a row to fill
// the available width while preserving each item's aspect ratio.
func ExampleCompute_justified() {
	result, err := layout.Compute(layout.Input{
		Items:          []string{"wide", "square"},
		Ratios:         map[string]float64{"wide": 2.0, "square": 1.0},
		Mode:           gallery.ModeAdaptive,
		ContainerWidth: 648, // 600px available
		CellSize:       200,
	})
	if err != nil {
		panic(err)
	}

	for _, it := range result.Layout {
		fmt.Printf("%s: w=%.1f\n", it.ID, it.Width)
	}

	// Output:
	// wide: w=389.3
	// square: w=194.7
}
