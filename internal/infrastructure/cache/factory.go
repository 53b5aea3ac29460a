package cache

import (
	"time"

	"go.uber.org/zap"
)

// Backend identifies a list-cache implementation
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
	BackendNone   Backend = "none"
)

// ListCacheFactory creates the configured BeerListCache implementation
type ListCacheFactory struct {
	redisConfig RedisConfig
	ttl         time.Duration
	logger      *zap.Logger
}

// ListCacheFactoryOption is a functional option for configuring the factory
type ListCacheFactoryOption func(*ListCacheFactory)

// WithFactoryLogger sets the logger for the factory
func WithFactoryLogger(logger *zap.Logger) ListCacheFactoryOption {
	return func(f *ListCacheFactory) {
		f.logger = logger
	}
}

// NewListCacheFactory creates a new factory
func NewListCacheFactory(redisCfg RedisConfig, ttl time.Duration, opts ...ListCacheFactoryOption) *ListCacheFactory {
	f := &ListCacheFactory{
		redisConfig: redisCfg,
		ttl:         ttl,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds the cache for the requested backend. An unreachable Redis or
// an unknown backend falls back to the in-memory cache rather than failing
// startup; a missing cache is tolerated everywhere, so BackendNone yields a
// no-op cache.
func (f *ListCacheFactory) Create(backend Backend) BeerListCache {
	switch backend {
	case BackendRedis:
		c, err := NewRedisListCache(f.redisConfig, f.ttl)
		if err != nil {
			f.logger.Warn("redis list cache unavailable, falling back to in-memory",
				zap.Error(err),
			)
			return NewInMemoryListCache(WithTTL(f.ttl))
		}
		f.logger.Info("using redis list cache")
		return c
	case BackendNone:
		return NewNoopListCache()
	case BackendMemory:
		return NewInMemoryListCache(WithTTL(f.ttl))
	default:
		f.logger.Warn("unknown list cache backend, using in-memory",
			zap.String("backend", string(backend)),
		)
		return NewInMemoryListCache(WithTTL(f.ttl))
	}
}
