// Package cache holds the Redis client and the read-through search cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"campwatch/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

// Params defines the dependencies of the Redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns nil when caching is disabled. A failed startup ping only
// logs a warning: cache operations fail soft, so the service keeps running uncached.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Search cache disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, pingTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis unreachable, search results will not be cached",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
