//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/jsamuelsen/event-quote-service/internal/adapters/http"
	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/event-quote-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen/event-quote-service/internal/adapters/storage/redisstore"
	"github.com/jsamuelsen/event-quote-service/internal/app"
	"github.com/jsamuelsen/event-quote-service/internal/catalog"
	"github.com/jsamuelsen/event-quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/event-quote-service/internal/ports"
	"github.com/jsamuelsen/event-quote-service/internal/recommend"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// store is what the service binary needs from a storage backend.
type store interface {
	ports.QuotationRepository
	ports.HealthChecker
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAPI serves the full router over a real listener backed by s.
func newAPI(tb testing.TB, s store) *httptest.Server {
	tb.Helper()

	reg := prometheus.NewRegistry()

	domainMetrics, err := metrics.NewDomain("event_quote", reg)
	require.NoError(tb, err)

	healthRegistry := ports.NewHealthRegistry()
	require.NoError(tb, healthRegistry.Register(s))

	cat := catalog.New()

	planner := app.NewPlannerService(app.PlannerServiceConfig{
		Engine:  recommend.NewEngine(recommend.EngineConfig{Catalog: cat, Logger: discardLogger()}),
		Metrics: domainMetrics,
		Logger:  discardLogger(),
	})

	quotations := app.NewQuotationService(app.QuotationServiceConfig{
		Repository: s,
		Catalog:    cat,
		Metrics:    domainMetrics,
		Logger:     discardLogger(),
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:           discardLogger(),
		ServiceName:      "event-quote-service",
		HealthHandler:    handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo("test", "none", "unknown"), reg),
		CatalogHandler:   handlers.NewCatalogHandler(cat, planner, nil),
		PlanningHandler:  handlers.NewPlanningHandler(planner),
		QuotationHandler: handlers.NewQuotationHandler(quotations),
	})

	srv := httptest.NewServer(engine)
	tb.Cleanup(srv.Close)

	return srv
}

func newMemoryAPI(tb testing.TB) *httptest.Server {
	tb.Helper()

	return newAPI(tb, memory.New())
}

// newRedisStore returns a store on a fresh miniredis instance.
func newRedisStore(tb testing.TB) (*redisstore.Store, *miniredis.Miniredis) {
	tb.Helper()

	mr := miniredis.RunT(tb)

	client := redisstore.NewClient(mr.Addr(), "", 0)
	tb.Cleanup(func() { _ = client.Close() })

	return redisstore.New(redisstore.Config{
		Client:    client,
		KeyPrefix: "it:",
		Logger:    discardLogger(),
	}), mr
}
