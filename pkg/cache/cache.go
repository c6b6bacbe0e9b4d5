// Package cache provides the caching layer for lightbox.
//
// # Overview
//
// Computed layouts, scanned library metadata, and rendered preview artifacts
// are all cacheable byte blobs keyed by content hashes of their inputs. The
// Cache interface abstracts the storage backend:
//
//   - MemoryCache: bounded in-process LRU, for per-view layout reuse
//   - FileCache: sha256-sharded JSON files, for CLI usage
//   - RedisCache: shared cache for the sidecar service
//   - NullCache: caching disabled
//
// The Keyer interface centralizes key construction so CLI, API, and pipeline
// agree on cache identity. Keys hash every input that affects the output:
// a layout key covers the library hash plus all layout options, an artifact
// key additionally covers render options.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached stage. Library scans go stale as files change;
// layouts and artifacts are pure functions of their keys and can live longer.
const (
	TTLLibrary  = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the capability contract for all cache backends. Implementations
// must be safe for concurrent use. Get returns (data, hit, error); a miss is
// not an error. A ttl of zero means no expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// =============================================================================
// Keyer - Cache Key Construction
// =============================================================================

// LibraryKeyOpts are the inputs that affect a scanned library snapshot.
type LibraryKeyOpts struct {
	Root       string
	Recursive  bool
	ProbeExif  bool
	Extensions []string
}

// LayoutKeyOpts are the inputs that affect a computed layout.
type LayoutKeyOpts struct {
	Mode           string
	View           string
	ContainerWidth float64
	CellSize       float64
	Grouped        bool
	TagFilter      string
	CollapsedKeys  []string
}

// ArtifactKeyOpts are the inputs that affect a rendered preview artifact.
type ArtifactKeyOpts struct {
	Format string
	Labels bool
}

// Keyer generates cache keys for each pipeline stage.
type Keyer interface {
	// LibraryKey identifies a library scan result.
	LibraryKey(opts LibraryKeyOpts) string

	// LayoutKey identifies a layout computed for a library content hash.
	LayoutKey(libraryHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies an artifact rendered from a layout hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LibraryKey generates a key for library scan caching.
func (k *DefaultKeyer) LibraryKey(opts LibraryKeyOpts) string {
	return hashKey("library", opts)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(libraryHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", libraryHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
