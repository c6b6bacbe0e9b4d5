package library

import (
	"context"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/mkoester/lightbox/pkg/errors"
	"github.com/mkoester/lightbox/pkg/gallery"
)

// DefaultExtensions are the image file extensions the scanner picks up.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// ScanOptions configures a directory scan.
type ScanOptions struct {
	// Root is the directory to scan.
	Root string

	// Recursive descends into subdirectories.
	Recursive bool

	// Extensions overrides DefaultExtensions when non-empty.
	// Entries are matched case-insensitively and must include the dot.
	Extensions []string

	// ProbeExif reads EXIF orientation from JPEG files and swaps the
	// reported dimensions for rotated images (orientations 5-8).
	ProbeExif bool

	// Logger receives per-file warnings. Nil disables logging.
	Logger *log.Logger
}

func (o ScanOptions) extensions() map[string]bool {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}

// Scan walks a directory and builds a catalog of the images it finds.
// Item ids are slash-separated paths relative to the root. Files whose
// dimensions cannot be read are kept with zero dimensions; the layout
// engine falls back to a square ratio for them.
func Scan(ctx context.Context, opts ScanOptions) (*Library, error) {
	if err := errors.ValidateLibraryPath(opts.Root); err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "library root %s", opts.Root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "library root %s is not a directory", opts.Root)
	}

	exts := opts.extensions()
	lib := NewLibrary()

	walkErr := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if !opts.Recursive && path != opts.Root {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !exts[ext] {
			return nil
		}

		rel, err := filepath.Rel(opts.Root, path)
		if err != nil {
			return err
		}
		id := filepath.ToSlash(rel)

		meta := gallery.Meta{
			Kind: gallery.KindImage,
			Name: strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Path: path,
		}
		if fi, err := d.Info(); err == nil {
			meta.CreatedAt = fi.ModTime()
			meta.UpdatedAt = fi.ModTime()
		}

		width, height, probeErr := probeDimensions(path, opts.ProbeExif && isJPEG(ext))
		if probeErr != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("could not read image dimensions",
					"path", path, "error", probeErr)
			}
		} else {
			meta.Width = width
			meta.Height = height
		}

		lib.SetItem(id, meta)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLibrary, walkErr, "scan %s", opts.Root)
	}

	return lib, nil
}

func isJPEG(ext string) bool {
	return ext == ".jpg" || ext == ".jpeg"
}

// probeDimensions reads the pixel dimensions of an image file. When
// probeExif is set, EXIF orientations 5-8 (the rotated ones) swap width
// and height so aspect ratios match what a viewer renders.
func probeDimensions(path string, probeExif bool) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	width, height := cfg.Width, cfg.Height

	if probeExif {
		if _, err := f.Seek(0, 0); err == nil {
			if x, err := exif.Decode(f); err == nil {
				if tag, err := x.Get(exif.Orientation); err == nil {
					if v, err := tag.Int(0); err == nil && v >= 5 && v <= 8 {
						width, height = height, width
					}
				}
			}
		}
	}

	return width, height, nil
}
