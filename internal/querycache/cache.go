// Package querycache provides an optional Redis-backed cache for
// related-document and search responses. Entries are invalidated wholesale
// after every ingestion, since any new version can change query results.
package querycache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/scrapedocs/organizer/internal/organizer/document"
	"github.com/scrapedocs/organizer/pkg/config"
	pkgredis "github.com/scrapedocs/organizer/pkg/redis"
)

const keyPrefix = "organizer:"

// Cache stores snapshot lists keyed by query kind and argument. A nil *Cache
// is valid and computes straight through.
type Cache struct {
	client *pkgredis.Client
	cfg    config.RedisConfig
	group  singleflight.Group
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a Cache on top of an established Redis client.
func New(client *pkgredis.Client, cfg config.RedisConfig) *Cache {
	return &Cache{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "query-cache"),
	}
}

// GetOrCompute returns the cached response for (kind, arg) or runs computeFn,
// caching its result. Concurrent callers for the same key share one
// computation. The boolean reports a cache hit.
func (c *Cache) GetOrCompute(
	ctx context.Context,
	kind, arg string,
	computeFn func() []document.Snapshot,
) ([]document.Snapshot, bool) {
	if c == nil {
		return computeFn(), false
	}
	key := buildKey(kind, arg)
	if snapshots, ok := c.get(ctx, key); ok {
		return snapshots, true
	}
	val, _, _ := c.group.Do(key, func() (interface{}, error) {
		if snapshots, ok := c.get(ctx, key); ok {
			return snapshots, nil
		}
		snapshots := computeFn()
		c.set(ctx, key, snapshots)
		return snapshots, nil
	})
	return val.([]document.Snapshot), false
}

func (c *Cache) get(ctx context.Context, key string) ([]document.Snapshot, bool) {
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		c.misses.Add(1)
		return nil, false
	}
	var snapshots []document.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshots); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return snapshots, true
}

func (c *Cache) set(ctx context.Context, key string, snapshots []document.Snapshot) {
	data, err := json.Marshal(snapshots)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.cfg.CacheTTL); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

// InvalidateAll drops every cached response. Called after each ingestion.
func (c *Cache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	deleted, err := c.client.FlushByPattern(ctx, keyPrefix+"*")
	if err != nil {
		c.logger.Error("cache invalidation failed", "error", err)
		return
	}
	c.logger.Debug("cache invalidated", "keys_deleted", deleted)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

func buildKey(kind, arg string) string {
	hash := sha256.Sum256([]byte(arg))
	return fmt.Sprintf("%s%s:%x", keyPrefix, kind, hash[:16])
}
