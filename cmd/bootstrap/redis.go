package bootstrap

import (
	"context"
	"log/slog"

	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/cache"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewCatalogCache,
	),
)

// NewRedisClient returns nil when no address is configured; the cache
// layer treats a nil client as disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		slog.Info("Redis disabled, catalog caching is off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("Redis ping failed, continuing without cache", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewCatalogCache(client *redis.Client, cfg config.Config) *cache.CatalogCache {
	return cache.NewCatalogCache(client, cfg.Redis.CacheTTL)
}
