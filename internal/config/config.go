package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Counter modes for the checkout sequence.
const (
	CounterModePerClass  = "per-class"
	CounterModeAggregate = "aggregate"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	MongoURI       string
	MongoDatabase  string
	MongoOpTimeout time.Duration

	RedisURL string
	// RedisPoolSize bounds connections shared by the rate limiter and the
	// listing cache. Zero keeps the go-redis default.
	RedisPoolSize  int
	RedisMinIdle   int
	RedisOpTimeout time.Duration

	JWTSecret string
	JWTExpiry time.Duration

	PaymentSecret string
	StripeAPIURL  string

	// CheckoutCounterMode is either CounterModePerClass or CounterModeAggregate.
	CheckoutCounterMode string

	CacheTTL           time.Duration
	RateLimitPerMinute int
	PopularRefreshCron string

	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", getEnv("PORT", "5000")),
		GinMode:             getEnv("GIN_MODE", "debug"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "pretty"),
		MongoURI:            mongoURI(),
		MongoDatabase:       getEnv("MONGO_DATABASE", "yoga-master"),
		MongoOpTimeout:      time.Duration(getEnvInt("MONGO_OP_TIMEOUT_SECONDS", 10)) * time.Second,
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPoolSize:       getEnvInt("REDIS_POOL_SIZE", 20),
		RedisMinIdle:        getEnvInt("REDIS_MIN_IDLE_CONNS", 4),
		RedisOpTimeout:      time.Duration(getEnvInt("REDIS_OP_TIMEOUT_MS", 250)) * time.Millisecond,
		JWTSecret:           getEnv("ACCESS_SECRET", "change-this-to-a-secure-random-string"),
		JWTExpiry:           time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		PaymentSecret:       getEnv("PAYMENT_SECRET", ""),
		StripeAPIURL:        getEnv("STRIPE_API_URL", "https://api.stripe.com"),
		CheckoutCounterMode: parseCounterMode(getEnv("CHECKOUT_COUNTER_MODE", CounterModePerClass)),
		CacheTTL:            time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		PopularRefreshCron:  getEnv("POPULAR_REFRESH_CRON", "*/10 * * * *"),
		AllowedOrigins:      parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// mongoURI prefers MONGO_URI. Otherwise it builds an Atlas SRV URI from
// DB_USER, DB_PASSWORD and MONGO_HOST, falling back to a local server.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")
	host := getEnv("MONGO_HOST", "")
	if user == "" || host == "" {
		return "mongodb://localhost:27017"
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=yoga-master", user, pass, host)
}

// parseCounterMode returns the per-class mode for anything it does not recognise.
func parseCounterMode(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), CounterModeAggregate) {
		return CounterModeAggregate
	}
	return CounterModePerClass
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
