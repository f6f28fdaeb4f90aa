// Package main runs the event quotation HTTP service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisotel/v9"

	"github.com/jsamuelsen/event-quote-service/internal/adapters/http"
	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/event-quote-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen/event-quote-service/internal/adapters/storage/redisstore"
	"github.com/jsamuelsen/event-quote-service/internal/app"
	"github.com/jsamuelsen/event-quote-service/internal/catalog"
	"github.com/jsamuelsen/event-quote-service/internal/platform/config"
	"github.com/jsamuelsen/event-quote-service/internal/platform/logging"
	"github.com/jsamuelsen/event-quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/event-quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/event-quote-service/internal/ports"
	"github.com/jsamuelsen/event-quote-service/internal/recommend"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Local .env files feed the APP_ variables; a missing file is fine.
	_ = godotenv.Load()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("storage", cfg.Storage.Driver),
	)

	// 4. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Prometheus registry with runtime and domain collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	domainMetrics, err := metrics.NewDomain(cfg.Metrics.Namespace, registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	// 6. Quotation store, registered as a readiness check
	healthRegistry := ports.NewHealthRegistry()

	store, closeStore := newStore(ctx, cfg, logger)
	defer closeStore()

	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Catalog, engine and application services
	taxPercentage, err := cfg.Pricing.TaxPercentage()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cat := catalog.New()

	engine := recommend.NewEngine(recommend.EngineConfig{Catalog: cat, Logger: logger})

	planner := app.NewPlannerService(app.PlannerServiceConfig{
		Engine:  engine,
		Metrics: domainMetrics,
		Logger:  logger,
	})

	quotations := app.NewQuotationService(app.QuotationServiceConfig{
		Repository: store,
		Catalog:    cat,
		Metrics:    domainMetrics,
		Defaults: &app.QuotationDefaults{
			GuestCount:    cfg.Pricing.DefaultGuestCount,
			TaxPercentage: taxPercentage,
		},
		Logger: logger,
	})

	// 8. HTTP server and routes
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:           logger,
		ServiceName:      cfg.App.Name,
		HealthHandler:    handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime), registry),
		CatalogHandler:   handlers.NewCatalogHandler(cat, planner, nil),
		PlanningHandler:  handlers.NewPlanningHandler(planner),
		QuotationHandler: handlers.NewQuotationHandler(quotations),
		Timeout:          cfg.Server.RequestTimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// quotationStore is what the service needs from a store: persistence plus a
// readiness check.
type quotationStore interface {
	ports.QuotationRepository
	ports.HealthChecker
}

// newStore builds the configured store and returns its cleanup function.
func newStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (quotationStore, func()) {
	if cfg.Storage.Driver != config.StorageRedis {
		return memory.New(), func() {}
	}

	client := redisstore.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Uses the global providers installed by telemetry.New.
	if cfg.Telemetry.Enabled {
		if err := redisotel.InstrumentTracing(client); err != nil {
			logger.Error("instrumenting redis tracing", slog.Any("error", err))
		}

		if err := redisotel.InstrumentMetrics(client); err != nil {
			logger.Error("instrumenting redis metrics", slog.Any("error", err))
		}
	}

	store := redisstore.New(redisstore.Config{
		Client:    client,
		KeyPrefix: cfg.Redis.KeyPrefix,
		Logger:    logger,
	})

	// An unreachable Redis is reported by readiness rather than failing startup.
	if err := store.Check(ctx); err != nil {
		logger.Warn("redis not reachable at startup",
			slog.String("addr", cfg.Redis.Addr),
			slog.Any("error", err),
		)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error("closing redis client", slog.Any("error", err))
		}
	}

	return store, closeFn
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
