// Package cache provides the Redis-backed lookup cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"showmyshop/config"
	"showmyshop/internal/domain/lifecycle"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the cache configured by cache.enabled. A disabled cache never
// hits and drops writes.
func New(params Params) service.Cache {
	if !params.Config.Cache.Enabled || params.Config.Redis == nil {
		params.Logger.Info("Cache disabled, using no-op cache")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis cache connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client, params.Logger)
}

type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, logger *slog.Logger) service.Cache {
	return &redisCache{client: client, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "redis get %s", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// A stale or foreign payload is treated as a miss and evicted.
		c.logger.WarnContext(ctx, "Dropping undecodable cache entry", slog.String("key", key), slog.Any("error", err))
		_ = c.client.Del(ctx, key).Err()

		return false, nil
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, string) error { return nil }

// NewNoop returns a cache that stores nothing.
func NewNoop() service.Cache {
	return noopCache{}
}
