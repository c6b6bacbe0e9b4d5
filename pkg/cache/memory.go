package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultMemoryCapacity is the default entry capacity for MemoryCache.
const DefaultMemoryCapacity = 256

// MemoryCache is a bounded in-process LRU cache. When the entry capacity is
// exceeded the least recently used entry is evicted. Expiration is checked
// lazily on Get. Safe for concurrent use.
//
// This replaces the original application's ambient module-level caches with
// an explicit, injectable service carrying a defined capacity and eviction
// policy.
type MemoryCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List               // front = most recently used
	entries  map[string]*list.Element // key -> element in order
}

type memoryEntry struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an LRU cache bounded to capacity entries.
// A non-positive capacity uses DefaultMemoryCapacity.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a value, refreshing its recency. Expired entries are removed
// and reported as misses.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	entry := el.Value.(*memoryEntry)
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.remove(el)
		return nil, false, nil
	}

	c.order.MoveToFront(el)
	return entry.data, true, nil
}

// Set stores a value, evicting the least recently used entry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.data = data
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return nil
	}

	el := c.order.PushFront(&memoryEntry{key: key, data: data, expiresAt: expiresAt})
	c.entries[key] = el

	if c.order.Len() > c.capacity {
		c.remove(c.order.Back())
	}
	return nil
}

// Delete removes a value.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.remove(el)
	}
	return nil
}

// Len returns the current entry count.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Close releases all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
	return nil
}

// remove must be called with the lock held.
func (c *MemoryCache) remove(el *list.Element) {
	if el == nil {
		return
	}
	entry := el.Value.(*memoryEntry)
	c.order.Remove(el)
	delete(c.entries, entry.key)
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
