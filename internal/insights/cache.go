package insights

import (
	"context"
	"sync"
)

// Cache stores the last computed insight per time-range label. Entries are
// invalidated only by a full data replace, never by minor data drift.
type Cache interface {
	Get(label string) (Insight, bool)
	Put(label string, ins Insight)
	InvalidateAll()
}

// MemoryCache is the in-process Cache used by the CLI and assistant server.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]Insight
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Insight)}
}

func (c *MemoryCache) Get(label string) (Insight, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ins, ok := c.entries[label]
	return ins, ok
}

func (c *MemoryCache) Put(label string, ins Insight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[label] = ins
}

func (c *MemoryCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Insight)
}

// Cached wraps a Generator with a per-range-label cache.
type Cached struct {
	Generator Generator
	Cache     Cache
}

// Generate returns the cached insight for the request's range when present,
// otherwise it delegates and stores the result. Errors are never cached.
func (c Cached) Generate(ctx context.Context, req Request) (Insight, error) {
	if ins, ok := c.Cache.Get(req.RangeLabel); ok {
		return ins, nil
	}
	ins, err := c.Generator.Generate(ctx, req)
	if err != nil {
		return Insight{}, err
	}
	c.Cache.Put(req.RangeLabel, ins)
	return ins, nil
}
