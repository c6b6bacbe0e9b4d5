package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoester/lightbox/pkg/library"
	"github.com/mkoester/lightbox/pkg/pipeline"
)

// scanCommand creates the scan command for cataloging image libraries.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan an image directory into a library catalog",
		Long: `Scan an image directory into a library catalog.

The scan command walks a directory, reads image dimensions (and EXIF
orientation with --exif), and writes a library.json catalog. The catalog
feeds the 'layout' and 'render' commands.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Root = args[0]
			return c.runScan(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "library.json", "output catalog file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVar(&opts.ProbeExif, "exif", false, "read EXIF orientation from JPEG files")
	cmd.Flags().StringSliceVar(&opts.Extensions, "ext", nil, "image extensions to include (default .jpg,.jpeg,.png,.gif)")

	return cmd
}

// runScan scans the directory and writes the catalog.
func (c *CLI) runScan(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinner(ctx, "Scanning "+opts.Root+"...")
	spinner.Start()

	lib, cacheHit, err := runner.ScanWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Scan failed")
		return fmt.Errorf("scan library: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := library.ExportJSON(output, lib, opts.Root); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	printSuccess("Scanned %d items", lib.Len())
	printFile(output)
	printStats(lib.Len(), 0, cacheHit)
	printNewline()
	printNextStep("Compute a layout", "lightbox layout "+output+" --width 1280")

	return nil
}

// loadLibraryArg loads a catalog from either a library.json file or by
// scanning a directory given directly.
func (c *CLI) loadLibraryArg(ctx context.Context, runner *pipeline.Runner, arg string, opts pipeline.Options) (*library.Library, error) {
	if strings.HasSuffix(arg, ".json") {
		lib, err := library.ImportJSON(arg)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", arg, err)
		}
		return lib, nil
	}

	opts.Root = arg
	lib, err := runner.Scan(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", arg, err)
	}
	return lib, nil
}
