// Package pipeline provides the core gallery pipeline for lightbox.
//
// This package implements the complete scan → layout → render pipeline that
// can be used by CLI, API, and service components. By centralizing this
// logic, every entry point caches and validates the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: Walk a library directory and catalog image metadata
//  2. Layout: Compute item positions for the chosen mode and view
//  3. Render: Generate output artifacts (SVG preview, JSON document)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Root:           "/photos",
//	    Mode:           "adaptive",
//	    ContainerWidth: 1280,
//	    Formats:        []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoester/lightbox/pkg/cache"
	"github.com/mkoester/lightbox/pkg/errors"
	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/grouping"
	"github.com/mkoester/lightbox/pkg/library"
	"github.com/mkoester/lightbox/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Service
// =============================================================================

const (
	// DefaultMode is the default layout mode.
	DefaultMode = string(gallery.ModeAdaptive)

	// DefaultView is the default view kind.
	DefaultView = string(gallery.ViewContent)

	// DefaultCellSize is the default base cell size in pixels.
	DefaultCellSize = 200.0

	// DefaultContainerWidth matches the engine's fallback for unmeasured
	// containers.
	DefaultContainerWidth = 1280.0
)

// DefaultFormat is the default output format.
const DefaultFormat = render.FormatSVG

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the gallery pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Scan options
	Root       string   `json:"root"`
	Recursive  bool     `json:"recursive,omitempty"`
	ProbeExif  bool     `json:"probe_exif,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`

	// Layout options
	Mode           string              `json:"mode,omitempty"`
	View           string              `json:"view,omitempty"`
	ContainerWidth float64             `json:"container_width,omitempty"`
	CellSize       float64             `json:"cell_size,omitempty"`
	Grouped        bool                `json:"grouped,omitempty"`
	TagFilter      string              `json:"tag_filter,omitempty"`
	Collapsed      map[string]bool     `json:"collapsed,omitempty"`
	Tags           map[string][]string `json:"tags,omitempty"`   // tag name -> member ids
	Topics         []grouping.Topic    `json:"topics,omitempty"` // curated people groups

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Library is the scanned catalog.
	Library *library.Library

	// LibraryHash is the content hash of the catalog snapshot.
	LibraryHash string

	// Layout is the computed layout.
	Layout gallery.LayoutResult

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	ScanTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ScanHit   bool // Whether the catalog came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForScan(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForScan checks required fields for scanning.
func (o *Options) ValidateForScan() error {
	if err := errors.ValidateLibraryPath(o.Root); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if !gallery.Mode(o.Mode).Valid() {
		return errors.New(errors.ErrCodeInvalidMode,
			"invalid mode: %q (must be one of: list, grid, adaptive, masonry)", o.Mode)
	}
	if !gallery.ViewKind(o.View).Valid() {
		return errors.New(errors.ErrCodeInvalidView,
			"invalid view: %q (must be one of: content, tags, people)", o.View)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return render.ValidateFormats(o.Formats)
}

// LibraryKeyOpts returns cache key options for the scan stage.
func (o *Options) LibraryKeyOpts() cache.LibraryKeyOpts {
	return cache.LibraryKeyOpts{
		Root:       o.Root,
		Recursive:  o.Recursive,
		ProbeExif:  o.ProbeExif,
		Extensions: o.Extensions,
	}
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	collapsed := make([]string, 0, len(o.Collapsed))
	for id, on := range o.Collapsed {
		if on {
			collapsed = append(collapsed, id)
		}
	}
	sort.Strings(collapsed)

	return cache.LayoutKeyOpts{
		Mode:           o.Mode,
		View:           o.View,
		ContainerWidth: o.ContainerWidth,
		CellSize:       o.CellSize,
		Grouped:        o.Grouped,
		TagFilter:      o.TagFilter,
		CollapsedKeys:  collapsed,
	}
}

// ArtifactKeyOpts returns cache key options for the render stage.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Labels: o.Labels,
	}
}
