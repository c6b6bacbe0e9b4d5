package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoester/lightbox/pkg/cache"
	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/layout"
	"github.com/mkoester/lightbox/pkg/library"
	"github.com/mkoester/lightbox/pkg/observability"
	"github.com/mkoester/lightbox/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete scan → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Scan
	scanStart := time.Now()
	lib, scanHit, err := r.ScanWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	result.Library = lib
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.ItemCount = lib.Len()
	result.CacheInfo.ScanHit = scanHit
	result.LibraryHash = LibraryHash(lib)

	r.Logger.Info("scanned library",
		"items", lib.Len(),
		"duration", result.Stats.ScanTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	computed, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, lib, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = computed
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"items", len(computed.Layout),
		"height", computed.TotalHeight,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, computed, lib.Names(), opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ScanWithCacheInfo scans the library with caching and returns cache hit info.
func (r *Runner) ScanWithCacheInfo(ctx context.Context, opts Options) (*library.Library, bool, error) {
	if err := opts.ValidateForScan(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LibraryKey(opts.LibraryKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			lib, err := library.ReadJSON(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "scan")
				return lib, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "scan")

	// Scan
	start := time.Now()
	observability.Pipeline().OnScanStart(ctx, opts.Root)
	lib, err := library.Scan(ctx, library.ScanOptions{
		Root:       opts.Root,
		Recursive:  opts.Recursive,
		Extensions: opts.Extensions,
		ProbeExif:  opts.ProbeExif,
		Logger:     opts.Logger,
	})
	if err != nil {
		observability.Pipeline().OnScanComplete(ctx, opts.Root, 0, time.Since(start), err)
		return nil, false, err
	}
	observability.Pipeline().OnScanComplete(ctx, opts.Root, lib.Len(), time.Since(start), nil)

	// Cache the result
	var buf bytes.Buffer
	if err := library.WriteJSON(&buf, lib, cacheKey); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLLibrary)
		observability.Cache().OnCacheSet(ctx, "scan", buf.Len())
	}

	return lib, false, nil // Cache miss
}

// Scan is a convenience wrapper that discards the cache hit info.
func (r *Runner) Scan(ctx context.Context, opts Options) (*library.Library, error) {
	lib, _, err := r.ScanWithCacheInfo(ctx, opts)
	return lib, err
}

// GenerateLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, lib *library.Library, opts Options) (gallery.LayoutResult, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return gallery.LayoutResult{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(LibraryHash(lib), opts.LayoutKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached gallery.LayoutResult
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	// Compute layout
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Mode, lib.Len())
	computed, err := layout.Compute(BuildInput(lib, opts))
	observability.Pipeline().OnLayoutComplete(ctx, opts.Mode, time.Since(start), err)
	if err != nil {
		return gallery.LayoutResult{}, false, err
	}

	// Cache the result
	if data, err := json.Marshal(computed); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return computed, false, nil // Cache miss
}

// GenerateLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, lib *library.Library, opts Options) (gallery.LayoutResult, error) {
	computed, _, err := r.GenerateLayoutWithCacheInfo(ctx, lib, opts)
	return computed, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, computed gallery.LayoutResult, names map[string]string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := json.Marshal(computed)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "render")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	// Render all formats
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := render.Render(computed, names, opts.Formats, opts.Labels)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, computed gallery.LayoutResult, names map[string]string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, computed, names, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// LibraryHash computes the content hash of a catalog. The snapshot id and
// timestamp are zeroed so identical content hashes identically.
func LibraryHash(lib *library.Library) string {
	snap := lib.Snapshot("")
	snap.UpdatedAt = time.Time{}
	data, err := json.Marshal(snap)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
