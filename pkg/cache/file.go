package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists entries as JSON envelope files under a root directory,
// sharded by the first hash byte so large libraries do not pile thousands of
// artifacts into one directory. It backs the CLI, where scans and rendered
// previews must survive between invocations.
type FileCache struct {
	dir string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEnvelope is the on-disk record: the cached bytes plus their expiry.
// A zero ExpiresAt means the entry never expires.
type fileEnvelope struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get reads an entry, treating corrupt or expired files as misses and
// removing them on the way out.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var env fileEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !env.ExpiresAt.IsZero() && time.Now().After(env.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return env.Data, true, nil
}

// Set writes an entry. A zero ttl stores the entry without expiry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	env := fileEnvelope{Data: data}
	if ttl != 0 {
		env.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes an entry; deleting an absent key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; every operation opens and closes its own file.
func (c *FileCache) Close() error {
	return nil
}

// entryPath maps a cache key onto the sharded directory layout:
// <dir>/<hash[0:2]>/<hash[2:]>.json.
func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
