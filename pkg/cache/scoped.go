package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// sidecar service uses this to keep per-view caches separate, e.g. one
// namespace per open tab or per library root.
//
// Example usage:
//
//	// View-specific keys
//	viewKeyer := NewScopedKeyer(NewDefaultKeyer(), "view:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LibraryKey generates a prefixed key for library scan caching.
func (k *ScopedKeyer) LibraryKey(opts LibraryKeyOpts) string {
	return k.prefix + k.inner.LibraryKey(opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(libraryHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(libraryHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
