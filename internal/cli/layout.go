package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoester/lightbox/pkg/pipeline"
	"github.com/mkoester/lightbox/pkg/render"
)

// layoutCommand creates the layout command for computing gallery layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		configFile string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout <library.json | directory>",
		Short: "Compute a gallery layout from a library catalog",
		Long: `Compute a gallery layout from a library catalog.

The layout command takes a library.json file (produced by 'scan') or a
directory (scanned on the fly) and computes item positions for the chosen
mode and view. The output is a layout.json document that can be previewed
with 'render'.

Modes: list, grid, adaptive (justified rows), masonry.
Views: content, tags, people.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			applyConfig(&opts, cfg)
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/lightbox/config.toml)")

	// Layout flags
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "layout mode: adaptive (default), list, grid, masonry")
	cmd.Flags().StringVar(&opts.View, "view", "", "view kind: content (default), tags, people")
	cmd.Flags().Float64VarP(&opts.ContainerWidth, "width", "w", 0, "container width in pixels")
	cmd.Flags().Float64Var(&opts.CellSize, "cell-size", 0, "target cell size / row height in pixels")
	cmd.Flags().BoolVarP(&opts.Grouped, "grouped", "g", false, "group the people view")
	cmd.Flags().StringVar(&opts.TagFilter, "filter", "", "case-insensitive substring filter")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "descend into subdirectories (directory input)")

	return cmd
}

// runLayout loads the catalog, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	lib, err := c.loadLibraryArg(ctx, runner, input, opts)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Computing layout...")
	spinner.Start()

	computed, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, lib, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	doc, err := render.RenderJSON(computed)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(outputPath, doc, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(computed.Layout), computed.TotalHeight, cacheHit)
	printNewline()
	printNextStep("Preview", "lightbox render "+outputPath)

	return nil
}
