package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/pipeline"
	"github.com/mkoester/lightbox/pkg/render"
)

// renderCommand creates the render command for producing preview artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		formats string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render <layout.json | directory>",
		Short: "Render a layout as an SVG or JSON preview",
		Long: `Render a layout as an SVG or JSON preview.

The render command takes a layout.json file (produced by 'layout') or a
directory (in which case the full scan → layout → render pipeline runs)
and writes preview artifacts.

Formats: svg, json. Use -f with a comma-separated list for several at once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formats)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output basename (default: derived from input)")
	cmd.Flags().StringVarP(&formats, "formats", "f", "", "output formats, comma-separated: svg (default), json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw item names in the SVG preview")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "layout mode for directory input")
	cmd.Flags().Float64VarP(&opts.ContainerWidth, "width", "w", 0, "container width for directory input")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "descend into subdirectories (directory input)")

	return cmd
}

// runRender produces artifacts from a layout file or a directory.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	var (
		computed gallery.LayoutResult
		names    map[string]string
		cacheHit bool
	)

	if strings.HasSuffix(input, ".json") {
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("read layout %s: %w", input, err)
		}
		doc, err := render.ParseJSON(data)
		if err != nil {
			return fmt.Errorf("parse layout %s: %w", input, err)
		}
		computed = gallery.LayoutResult{Layout: doc.Layout, TotalHeight: doc.TotalHeight}
	} else {
		opts.Root = input
		lib, err := runner.Scan(ctx, opts)
		if err != nil {
			return fmt.Errorf("scan %s: %w", input, err)
		}
		names = lib.Names()
		computed, err = runner.GenerateLayout(ctx, lib, opts)
		if err != nil {
			return fmt.Errorf("compute layout: %w", err)
		}
	}

	spinner := newSpinner(ctx, "Rendering...")
	spinner.Start()

	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, computed, names, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	cacheHit = hit
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
		base = strings.TrimSuffix(base, ".layout")
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		outputPath := base + "." + format
		if err := os.WriteFile(outputPath, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printFile(outputPath)
	}
	printStats(len(computed.Layout), computed.TotalHeight, cacheHit)

	return nil
}
