package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/database"
	"github.com/TauhidOSD/yoga-master-server/internal/handler"
	"github.com/TauhidOSD/yoga-master-server/internal/logger"
	"github.com/TauhidOSD/yoga-master-server/internal/middleware"
	"github.com/TauhidOSD/yoga-master-server/internal/payment"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"github.com/TauhidOSD/yoga-master-server/internal/router"
	"github.com/TauhidOSD/yoga-master-server/internal/service"
	"github.com/TauhidOSD/yoga-master-server/internal/validator"
	"github.com/TauhidOSD/yoga-master-server/internal/worker"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("counter_mode", cfg.CheckoutCounterMode).
		Msg("Starting Yoga Master Server")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	mongoClient, err := database.NewMongoClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	db := mongoClient.Database(cfg.MongoDatabase)
	if err := database.EnsureIndexes(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// ─── Connect to Redis ──────────────────────────────────────────────
	// Redis only backs caches and rate limits, so a failed ping degrades
	// instead of aborting startup.
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without shared cache")
		if rdb != nil {
			_ = rdb.Close()
		}
		rdb = nil
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	cacheService := service.NewCacheService(rdb, cfg.CacheTTL, log)
	authService := service.NewAuthService(cfg)
	accessService := service.NewAccessService(userRepo)
	userService := service.NewUserService(userRepo, cacheService)
	classService := service.NewClassService(classRepo, cacheService)
	cartService := service.NewCartService(cartRepo, classRepo)
	stripe := payment.NewStripeClient(cfg.StripeAPIURL, cfg.PaymentSecret, log)
	paymentService := service.NewPaymentService(stripe, paymentRepo)
	checkoutService := service.NewCheckoutService(classRepo, enrollmentRepo, cartRepo, paymentRepo, cacheService, cfg.CheckoutCounterMode, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	applicationService := service.NewApplicationService(applicationRepo)
	statsService := service.NewStatsService(classRepo, userRepo, enrollmentRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	var cachePing handler.Pinger
	if rdb != nil {
		cachePing = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, log),
		User:       handler.NewUserHandler(userService, log),
		Class:      handler.NewClassHandler(classService, log),
		Cart:       handler.NewCartHandler(cartService, log),
		Payment:    handler.NewPaymentHandler(paymentService, checkoutService, log),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService, applicationService, statsService, log),
		Health: handler.NewHealthHandler(
			func(ctx context.Context) error { return mongoClient.Ping(ctx, readpref.Primary()) },
			cachePing,
		),
	}
	guards := &router.Guards{
		Auth:        authService,
		Access:      accessService,
		RateLimiter: middleware.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, log),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	popularWorker := worker.NewPopularWorker(classService, cfg.PopularRefreshCron, log)
	if err := popularWorker.Start(workerCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start popular worker")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(guards, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the cache warmer and wait for a running refresh.
	workerCancel()
	popularWorker.Stop()

	// 3. Close connections.
	closeRedis(rdb)
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("MongoDB disconnect error")
	}

	log.Info().Msg("Server stopped")
}

func closeRedis(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
