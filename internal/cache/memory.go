package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	body      []byte
	path      string
	expiresAt time.Time
}

// MemoryCache is a process-local [PageCache]. A zero ttl keeps entries
// until they are revalidated.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	paths   map[string]map[string]struct{}
	gens    map[string]int64
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		paths:   make(map[string]map[string]struct{}),
		gens:    make(map[string]int64),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		return nil, false, nil
	}

	return entry.body, true, nil
}

func (c *MemoryCache) Generation(_ context.Context, path string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.gens[path], nil
}

func (c *MemoryCache) Set(_ context.Context, path, key string, generation int64, body []byte) error {
	entry := memoryEntry{
		body: append([]byte(nil), body...),
		path: path,
	}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[path] != generation {
		return ErrStaleGeneration
	}

	if old, ok := c.entries[key]; ok && old.path != path {
		delete(c.paths[old.path], key)
	}

	c.entries[key] = entry
	keys, ok := c.paths[path]
	if !ok {
		keys = make(map[string]struct{})
		c.paths[path] = keys
	}
	keys[key] = struct{}{}

	return nil
}

func (c *MemoryCache) Revalidate(_ context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.paths[path] {
		delete(c.entries, key)
	}
	delete(c.paths, path)
	c.gens[path]++

	return nil
}
