package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const carVersionKey = "catalog:cars:ver"

// CatalogCache keeps serialized car listings in Redis. Invalidation bumps
// a version counter rather than scanning keys, so stale entries simply
// age out via TTL. A nil client degrades to a pass-through: every read
// is a miss and writes are dropped.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) GetCarList(ctx context.Context, filterKey string) ([]*queries.CarListItem, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, c.carListKey(ctx, filterKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("catalog cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var items []*queries.CarListItem
	if err := json.Unmarshal(payload, &items); err != nil {
		slog.Warn("catalog cache entry corrupt", "error", err.Error())
		return nil, false
	}

	return items, true
}

func (c *CatalogCache) SetCarList(ctx context.Context, filterKey string, items []*queries.CarListItem) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.carListKey(ctx, filterKey), payload, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "error", err.Error())
	}
}

func (c *CatalogCache) InvalidateCars(ctx context.Context) {
	if c.client == nil {
		return
	}

	if err := c.client.Incr(ctx, carVersionKey).Err(); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err.Error())
	}
}

func (c *CatalogCache) carListKey(ctx context.Context, filterKey string) string {
	ver, err := c.client.Get(ctx, carVersionKey).Int64()
	if err != nil {
		ver = 0
	}
	return fmt.Sprintf("catalog:cars:v%d:%s", ver, filterKey)
}
