package cache

import (
	"context"
	"time"
)

// DefaultListTTL bounds staleness for cached list pages between writes
const DefaultListTTL = 5 * time.Minute

// BeerListCache caches serialized beer list pages keyed by the full query
// shape. It supports only full invalidation: any successful write clears the
// whole cache rather than targeting individual entries, trading hit rate for
// staleness avoidance. Clearing is idempotent and safe to interleave with
// concurrent reads.
type BeerListCache interface {
	// Get returns the cached page for key, or found=false on a miss
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	// Put stores a serialized page under key
	Put(ctx context.Context, key string, data []byte) error
	// Clear drops every cached page
	Clear(ctx context.Context) error
}

// NoopListCache is used when no cache backend is configured; all reads miss
// and writes are discarded. Callers are spared nil checks.
type NoopListCache struct{}

// NewNoopListCache creates a no-op cache
func NewNoopListCache() *NoopListCache {
	return &NoopListCache{}
}

// Get always misses
func (*NoopListCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Put discards the value
func (*NoopListCache) Put(context.Context, string, []byte) error {
	return nil
}

// Clear is a no-op
func (*NoopListCache) Clear(context.Context) error {
	return nil
}

var _ BeerListCache = (*NoopListCache)(nil)
