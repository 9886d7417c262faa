package bootstrap

import (
	"context"
	"log/slog"

	"bookit/internal/infra/cache"
	"bookit/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

// NewCache falls back to a no-op cache when REDIS_ADDR is empty. An unreachable
// Redis is only logged; reads fall through to PostgreSQL.
func NewCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.Cache {
	if !cfg.Redis.Enabled() {
		logger.Info("redis not configured, read cache disabled")
		return cache.NewNoopCache()
	}

	rc := cache.NewRedisCache(cache.NewRedisClient(cfg.Redis), cfg.Redis.TTL)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rc.Ping(ctx); err != nil {
				logger.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err.Error())
				return nil
			}
			logger.Info("redis cache connected", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rc.Close()
		},
	})
	return rc
}
