package location

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"nearmarket/utils"
)

// Cache stores resolved fixes for a bounded time so repeated lookups of the
// same point skip the geocoder.
type Cache interface {
	Get(ctx context.Context, key string) (Fix, bool)
	Set(ctx context.Context, key string, fix Fix, ttl time.Duration)
}

// MemoryCache is the in-process Cache used when no Redis is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	fix       Fix
	expiresAt time.Time
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

// Get returns a cached fix if present and not expired.
func (c *MemoryCache) Get(_ context.Context, key string) (Fix, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return Fix{}, false
	}
	return e.fix, true
}

// Set stores a fix with the given ttl. Expired entries are swept lazily.
func (c *MemoryCache) Set(_ context.Context, key string, fix Fix, ttl time.Duration) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = memoryEntry{fix: fix, expiresAt: now.Add(ttl)}
}

// RedisCache backs the fix cache with Redis so instances share it.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns a cached fix if present; any Redis error counts as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (Fix, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return Fix{}, false
	}
	var fix Fix
	if err := json.Unmarshal(raw, &fix); err != nil {
		return Fix{}, false
	}
	return fix, true
}

// Set stores a fix with the given ttl; failures are logged and ignored.
func (c *RedisCache) Set(ctx context.Context, key string, fix Fix, ttl time.Duration) {
	raw, err := json.Marshal(fix)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		utils.Warn("location: failed to cache fix in redis", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}
