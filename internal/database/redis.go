package database

import (
	"context"
	"fmt"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisOptions parses the URL and applies the pool settings. Reads and writes
// share RedisOpTimeout; the limiter and the cache fail open on timeouts.
func redisOptions(cfg *config.Config) (*redis.Options, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if cfg.RedisPoolSize > 0 {
		opt.PoolSize = cfg.RedisPoolSize
	}
	if cfg.RedisMinIdle > 0 {
		opt.MinIdleConns = cfg.RedisMinIdle
	}
	if cfg.RedisOpTimeout > 0 {
		opt.ReadTimeout = cfg.RedisOpTimeout
		opt.WriteTimeout = cfg.RedisOpTimeout
	}
	return opt, nil
}

// NewRedisClient returns the client shared by the rate limiter and the
// listing cache. On a failed ping the client comes back with the error so the
// caller can close it and run degraded.
func NewRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	opt, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return rdb, fmt.Errorf("ping redis at %s: %w", opt.Addr, err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Int("pool_size", opt.PoolSize).
		Dur("op_timeout", opt.ReadTimeout).
		Msg("Redis connected for cache and rate limits")

	return rdb, nil
}
