package components

import (
	"context"
	"log/slog"

	"skill-swap-core/internal/pkg/config"
	"skill-swap-core/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedisClient is only invoked when a component asks for it; the memory
// backends never open a connection.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) redis.UniversalClient {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrapf(err, "redis ping %s", cfg.Redis.Addr)
			}
			slog.Info("redis connected", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}
