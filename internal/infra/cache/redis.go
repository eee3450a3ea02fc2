// Package cache implements the TokenCache interface on Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"ezstudy/config"
	"ezstudy/internal/domain/lifecycle"
	"ezstudy/internal/domain/service"
	"ezstudy/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type redisCache struct {
	client *redis.Client
}

// New creates a Redis-backed TokenCache. Connectivity is verified on
// startup and the client is closed on shutdown.
func New(params Params) service.TokenCache {
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

			params.Logger.Info("Redis connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisCache{client: client}
}

// Set stores a value under key, replacing any existing value.
func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set key %s", key)
	}

	return nil
}

// SetIfAbsent stores a value only when the key does not already exist.
func (c *redisCache) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	stored, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to setnx key %s", key)
	}

	return stored, nil
}

// Get returns the value stored under key, or service.ErrCacheMiss.
func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", service.ErrCacheMiss
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to get key %s", key)
	}

	return value, nil
}

// Del removes a key. Removing a missing key is not an error.
func (c *redisCache) Del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}

// TTL reports the remaining lifetime of a key, or service.ErrCacheMiss
// when the key is absent.
func (c *redisCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read ttl of key %s", key)
	}
	// go-redis reports -2 for a missing key and -1 for a key without expiry.
	if ttl == -2 {
		return 0, service.ErrCacheMiss
	}
	if ttl == -1 {
		return 0, nil
	}

	return ttl, nil
}
