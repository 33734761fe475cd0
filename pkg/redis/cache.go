package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small key-value cache for rendered responses. Keys are
// namespaced with a prefix so groups of entries can be invalidated together
// after a write.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache creates a cache on top of an existing Redis client.
func NewCache(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache) key(group, k string) string {
	return c.prefix + ":" + group + ":" + k
}

// Get returns the cached value for a key, or ("", false) on a miss.
func (c *Cache) Get(ctx context.Context, group, k string) (string, bool) {
	val, err := c.client.Get(ctx, c.key(group, k)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value under a group key with the cache TTL.
func (c *Cache) Set(ctx context.Context, group, k, val string) error {
	return c.client.Set(ctx, c.key(group, k), val, c.ttl).Err()
}

// Invalidate removes every entry belonging to the given groups.
func (c *Cache) Invalidate(ctx context.Context, groups ...string) error {
	for _, group := range groups {
		iter := c.client.Scan(ctx, 0, c.prefix+":"+group+":*", 0).Iterator()
		for iter.Next(ctx) {
			if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}
