package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/event-quote-service/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router. Nil
// handlers leave their routes unregistered.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	HealthHandler    *handlers.HealthHandler
	CatalogHandler   *handlers.CatalogHandler
	PlanningHandler  *handlers.PlanningHandler
	QuotationHandler *handlers.QuotationHandler

	// Timeout is the deadline of /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware runs in this order:
//  1. Recovery
//  2. Context logger
//  3. Request ID
//  4. Correlation ID
//  5. OpenTelemetry span, trace ID and HTTP metrics
//  6. Access logging (skips /-/ routes)
//  7. Request deadline, on /api/v1 only
//
// Route groups:
//   - /-/: liveness, readiness, build info and Prometheus metrics
//   - /api/v1/: catalog, planning and quotation endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.CatalogHandler != nil {
		cfg.CatalogHandler.RegisterCatalogRoutes(rg)
	}

	if cfg.PlanningHandler != nil {
		cfg.PlanningHandler.RegisterPlanningRoutes(rg)
	}

	if cfg.QuotationHandler != nil {
		cfg.QuotationHandler.RegisterQuotationRoutes(rg)
	}
}

// SetupMinimalRouter sets up a router with just the health endpoints.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
