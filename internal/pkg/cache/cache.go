// Package cache provides a read-through JSON cache over Redis for
// single-entity lookups. A nil *Cache is a no-op so the service runs
// without Redis configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New[T any](client *redis.Client, prefix string, ttl time.Duration) *Cache[T] {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache[T]) key(id int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

// Get returns the cached entity and whether it was present. Redis errors
// are treated as misses; the store stays authoritative.
func (c *Cache[T]) Get(ctx context.Context, id int64) (*T, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var e T
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false
	}
	return &e, true
}

func (c *Cache[T]) Set(ctx context.Context, id int64, e *T) {
	if c == nil || e == nil {
		return
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(id), raw, c.ttl)
}

// Invalidate drops the cached entry after a mutation.
func (c *Cache[T]) Invalidate(ctx context.Context, id int64) {
	if c == nil {
		return
	}
	c.client.Del(ctx, c.key(id))
}
