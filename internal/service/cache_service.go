package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CacheService stores JSON listings in Redis. A nil client turns every call
// into a pass-through, and Redis failures are logged, never returned.
type CacheService struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewCacheService creates a new CacheService.
func NewCacheService(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *CacheService {
	return &CacheService{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "cache_service").Logger(),
	}
}

// Set writes v under key with the configured TTL.
func (s *CacheService) Set(ctx context.Context, key string, v interface{}) {
	if s == nil || s.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("marshal cache value")
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// get decodes the value under key into dst and reports whether it was a hit.
func (s *CacheService) get(ctx context.Context, key string, dst interface{}) bool {
	if s == nil || s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding corrupt cache entry")
		return false
	}
	return true
}

// Invalidate drops keys.
func (s *CacheService) Invalidate(ctx context.Context, keys ...string) {
	if s == nil || s.rdb == nil || len(keys) == 0 {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

// cached returns the value under key, or loads and stores it on a miss.
func cached[T any](ctx context.Context, cache *CacheService, key string, load func(context.Context) (T, error)) (T, error) {
	var hit T
	if cache.get(ctx, key, &hit) {
		return hit, nil
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	cache.Set(ctx, key, v)
	return v, nil
}
