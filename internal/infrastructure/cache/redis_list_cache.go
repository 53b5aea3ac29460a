package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisListCache implements BeerListCache on Redis for deployments where
// multiple instances must share invalidation. Entries live under a versioned
// namespace; Clear bumps the version counter, which orphans every existing
// entry at once without scanning keys. Orphans expire via their TTL.
type RedisListCache struct {
	client     *redis.Client
	keyPrefix  string
	versionKey string
	ttl        time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisListCache creates a new Redis-backed list cache
func NewRedisListCache(cfg RedisConfig, ttl time.Duration) (*RedisListCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisListCacheWithClient(client, ttl), nil
}

// NewRedisListCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisListCacheWithClient(client *redis.Client, ttl time.Duration) *RedisListCache {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &RedisListCache{
		client:     client,
		keyPrefix:  "beer:list:",
		versionKey: "beer:list:version",
		ttl:        ttl,
	}
}

// Get returns the cached page for key under the current namespace version
func (c *RedisListCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	nsKey, err := c.namespacedKey(ctx, key)
	if err != nil {
		return nil, false, err
	}

	data, err := c.client.Get(ctx, nsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return data, true, nil
}

// Put stores a serialized page with the configured TTL
func (c *RedisListCache) Put(ctx context.Context, key string, data []byte) error {
	nsKey, err := c.namespacedKey(ctx, key)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, nsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Clear invalidates every cached page by bumping the namespace version
func (c *RedisListCache) Clear(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.versionKey).Err(); err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	return nil
}

func (c *RedisListCache) namespacedKey(ctx context.Context, key string) (string, error) {
	version, err := c.client.Get(ctx, c.versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("redis get version: %w", err)
	}
	return fmt.Sprintf("%sv%d:%s", c.keyPrefix, version, key), nil
}

var _ BeerListCache = (*RedisListCache)(nil)
