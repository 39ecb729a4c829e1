package database

import (
	"testing"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
)

func TestRedisOptions(t *testing.T) {
	cfg := &config.Config{
		RedisURL:       "redis://cache.internal:6380/2",
		RedisPoolSize:  32,
		RedisMinIdle:   8,
		RedisOpTimeout: 200 * time.Millisecond,
	}
	opt, err := redisOptions(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if opt.Addr != "cache.internal:6380" || opt.DB != 2 {
		t.Errorf("addr = %s db = %d", opt.Addr, opt.DB)
	}
	if opt.PoolSize != 32 || opt.MinIdleConns != 8 {
		t.Errorf("pool = %d idle = %d", opt.PoolSize, opt.MinIdleConns)
	}
	if opt.ReadTimeout != 200*time.Millisecond || opt.WriteTimeout != 200*time.Millisecond {
		t.Errorf("timeouts = %s / %s", opt.ReadTimeout, opt.WriteTimeout)
	}
}

func TestRedisOptionsKeepsDefaults(t *testing.T) {
	opt, err := redisOptions(&config.Config{RedisURL: "redis://localhost:6379/0"})
	if err != nil {
		t.Fatal(err)
	}
	if opt.PoolSize != 0 || opt.ReadTimeout != 0 {
		t.Errorf("zero config should leave go-redis defaults, got pool=%d read=%s", opt.PoolSize, opt.ReadTimeout)
	}
}

func TestRedisOptionsRejectsBadURL(t *testing.T) {
	if _, err := redisOptions(&config.Config{RedisURL: "://nope"}); err == nil {
		t.Fatal("expected parse error")
	}
}
