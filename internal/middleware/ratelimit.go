package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// windowCounter increments the hit counter for key within a window that
// expires after ttl, returning the new count.
type windowCounter interface {
	incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimiter is a per-IP fixed-window limiter. Counters live in Redis so
// every instance shares them; without Redis they are kept in process.
type RateLimiter struct {
	counter windowCounter
	limit   int64
	window  time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
// A nil rdb selects the in-process counter.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) *RateLimiter {
	var counter windowCounter
	if rdb != nil {
		counter = &redisCounter{rdb: rdb}
	} else {
		counter = newMemoryCounter()
	}
	return &RateLimiter{
		counter: counter,
		limit:   int64(limit),
		window:  window,
		now:     time.Now,
		log:     log.With().Str("component", "rate_limiter").Logger(),
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP under
// scope. Counter failures let the request through.
func (rl *RateLimiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		windowStart := rl.now().Truncate(rl.window)
		key := config.CacheKey.RateLimitKey(scope, c.ClientIP(), windowStart.Unix())

		hits, err := rl.counter.incr(c.Request.Context(), key, rl.window)
		if err != nil {
			rl.log.Warn().Err(err).Str("scope", scope).Msg("rate limit counter unavailable, allowing request")
			c.Next()
			return
		}

		remaining := rl.limit - hits
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(rl.limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if hits > rl.limit {
			retry := windowStart.Add(rl.window).Sub(rl.now())
			c.Header("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

type redisCounter struct {
	rdb *redis.Client
}

func (r *redisCounter) incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

type memoryEntry struct {
	hits    int64
	expires time.Time
}

type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{entries: make(map[string]*memoryEntry), now: time.Now}
}

func (m *memoryCounter) incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, k)
		}
	}

	e, ok := m.entries[key]
	if !ok {
		e = &memoryEntry{expires: now.Add(ttl)}
		m.entries[key] = e
	}
	e.hits++
	return e.hits, nil
}
