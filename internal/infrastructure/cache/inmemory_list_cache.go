package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryListCache implements BeerListCache with a mutex-guarded map.
// Suitable for single-instance deployments; use the Redis implementation
// when multiple instances must share invalidation.
type InMemoryListCache struct {
	mu      sync.RWMutex
	entries map[string]listEntry
	ttl     time.Duration
	clock   func() time.Time
}

type listEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryListCacheOption is a functional option for the in-memory cache
type InMemoryListCacheOption func(*InMemoryListCache)

// WithTTL sets the entry time-to-live
func WithTTL(ttl time.Duration) InMemoryListCacheOption {
	return func(c *InMemoryListCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source, used by tests
func WithClock(clock func() time.Time) InMemoryListCacheOption {
	return func(c *InMemoryListCache) {
		c.clock = clock
	}
}

// NewInMemoryListCache creates a new in-memory list cache
func NewInMemoryListCache(opts ...InMemoryListCacheOption) *InMemoryListCache {
	c := &InMemoryListCache{
		entries: make(map[string]listEntry),
		ttl:     DefaultListTTL,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached page for key, treating expired entries as misses
func (c *InMemoryListCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.clock().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Put stores a serialized page under key
func (c *InMemoryListCache) Put(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	c.entries[key] = listEntry{data: data, expiresAt: c.clock().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

// Clear drops every cached page
func (c *InMemoryListCache) Clear(context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]listEntry)
	c.mu.Unlock()
	return nil
}

// Len returns the number of live entries, used by tests and stats
func (c *InMemoryListCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ BeerListCache = (*InMemoryListCache)(nil)
