package cache

import (
	"context"
	"time"
)

// NullCache discards every write and misses every read. It is the backend
// behind --no-cache and the zero-setup default in tests, letting the pipeline
// keep its caching code path without a real store.
type NullCache struct{}

// NewNullCache returns the discard-everything cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the entry.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
