// Package app wires together all dependencies and runs the storefront.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/config"
	"github.com/utafrali/storefront/internal/event"
	handler "github.com/utafrali/storefront/internal/handler/http"
	"github.com/utafrali/storefront/internal/payment"
	paymentmock "github.com/utafrali/storefront/internal/payment/mock"
	paymentstripe "github.com/utafrali/storefront/internal/payment/stripe"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/internal/repository/memory"
	redisrepo "github.com/utafrali/storefront/internal/repository/redis"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/database"
	"github.com/utafrali/storefront/pkg/health"
	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
// Product, order, review, and user stores are in-memory and seeded with the
// demo catalog; the cart store is Redis when REDIS_ADDR is set and in-memory
// otherwise.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing is a no-op when no OTLP endpoint is configured.
	var tracingShutdown func(context.Context) error
	if cfg.OTLPEndpoint != "" {
		traceCfg := tracing.DefaultConfig("storefront")
		traceCfg.Environment = cfg.Environment
		traceCfg.OTLPEndpoint = cfg.OTLPEndpoint
		traceCfg.SampleRate = cfg.TraceSample
		traceCfg.Enabled = true

		shutdown, err := tracing.InitTracer(ctx, traceCfg)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		tracingShutdown = shutdown
		logger.Info("tracing initialized", slog.String("endpoint", cfg.OTLPEndpoint))
	}

	// Seeded in-memory stores.
	productRepo := memory.NewProductRepository(memory.SeedProducts())
	orderRepo := memory.NewOrderRepository(memory.SeedOrders())
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	reviewRepo := memory.NewReviewRepository(memory.SeedReviews(), productRepo)

	// Cart store: Redis when configured, in-memory otherwise.
	var (
		rdb      *redis.Client
		cartRepo repository.CartRepository
	)
	if cfg.RedisAddr != "" {
		var err error
		rdb, err = database.NewRedisClient(ctx, database.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		cartRepo = redisrepo.NewCartRepository(rdb, cfg.CartTTLDuration())
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
	} else {
		cartRepo = memory.NewCartRepository()
		logger.Info("using in-memory cart store")
	}

	// Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	eventProducer := event.NewProducer(producer, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Payment provider.
	var provider payment.Provider
	switch cfg.PaymentProvider {
	case "stripe":
		provider = paymentstripe.NewProvider(paymentstripe.Config{
			SecretKey: cfg.StripeSecretKey,
			BaseURL:   cfg.StripeBaseURL,
		}, logger)
	default:
		provider = paymentmock.NewProvider()
	}
	logger.Info("payment provider initialized", slog.String("provider", provider.Name()))

	// Services.
	svcs := handler.Services{
		Catalog:  service.NewCatalogService(productRepo, memory.SeedCategories(), eventProducer, logger),
		Cart:     service.NewCartService(cartRepo, productRepo, logger, cfg.CartTTLDuration()),
		Checkout: service.NewCheckoutService(cartRepo, productRepo, orderRepo, provider, eventProducer, logger),
		Orders:   service.NewOrderService(orderRepo, eventProducer, logger),
		Reviews:  service.NewReviewService(reviewRepo, productRepo, logger),
		Admin:    service.NewAdminService(productRepo, orderRepo, userRepo, logger),
	}

	// Health checks.
	healthHandler := health.NewHandler()
	if rdb != nil {
		healthHandler.RegisterCritical("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	if len(cfg.KafkaBrokers) > 0 {
		healthHandler.RegisterNonCritical("kafka", producer.Ping)
	}

	router := handler.NewRouter(svcs, userRepo, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.tracingShutdown != nil {
		if err := a.tracingShutdown(shutdownCtx); err != nil {
			a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
