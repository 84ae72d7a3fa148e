package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultNameTTL = 10 * time.Minute

// NameCache keeps user display names so list and view responses do not hit
// the users collection for every referenced id.
// Key format: user:name:<hex_id>
type NameCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNameCache wraps client; a non-positive ttl falls back to the default.
func NewNameCache(client *redis.Client, ttl time.Duration) *NameCache {
	if ttl <= 0 {
		ttl = defaultNameTTL
	}
	return &NameCache{client: client, ttl: ttl}
}

// GetNames returns the cached names among ids. Misses are simply absent.
func (c *NameCache) GetNames(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("name cache get: %w", err)
	}
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[ids[i]] = s
		}
	}
	return out, nil
}

// SetNames writes every entry with the cache TTL in one round trip.
func (c *NameCache) SetNames(ctx context.Context, names map[string]string) error {
	if len(names) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for id, name := range names {
		pipe.Set(ctx, c.key(id), name, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("name cache set: %w", err)
	}
	return nil
}

func (c *NameCache) key(id string) string {
	return "user:name:" + id
}
