package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
	"github.com/jsamuelsen/event-quote-service/internal/platform/logging"
	"github.com/jsamuelsen/event-quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/event-quote-service/internal/recommend"
)

// PlanRequest asks for recommendations for one event.
type PlanRequest struct {
	EventType  domain.EventType
	GuestCount int
	Budget     *decimal.Decimal
	Venue      string

	// EventDate selects seasonal tips. It defaults to today.
	EventDate *time.Time

	// TargetBudget, when set, trims the recommendations to fit.
	TargetBudget *decimal.Decimal
}

// Plan is the answer to a PlanRequest.
type Plan struct {
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Total           decimal.Decimal           `json:"total"`
	Optimization    *recommend.OptimizeResult `json:"optimization,omitempty"`
	Season          domain.Season             `json:"season"`
	Tips            []string                  `json:"tips"`
}

// PlannerServiceConfig holds the dependencies of a PlannerService. Engine
// is required.
type PlannerServiceConfig struct {
	Engine  *recommend.Engine
	Advisor *recommend.SeasonalAdvisor
	Metrics *metrics.Domain
	Clock   func() time.Time
	Logger  *slog.Logger
}

// PlannerService answers recommendation requests.
type PlannerService struct {
	engine  *recommend.Engine
	advisor *recommend.SeasonalAdvisor
	metrics *metrics.Domain
	now     func() time.Time
	logger  *slog.Logger
}

// NewPlannerService creates the service and publishes the engine's catalog
// resolution warnings.
func NewPlannerService(cfg PlannerServiceConfig) *PlannerService {
	if cfg.Engine == nil {
		panic("app: recommendation engine is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	advisor := cfg.Advisor
	if advisor == nil {
		advisor = recommend.NewSeasonalAdvisor()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	cfg.Metrics.SetResolutionWarnings(len(cfg.Engine.Warnings()))

	return &PlannerService{
		engine:  cfg.Engine,
		advisor: advisor,
		metrics: cfg.Metrics,
		now:     clock,
		logger:  logger.With(slog.String("component", "app.PlannerService")),
	}
}

// Plan computes recommendations, an optional budget trim and seasonal tips.
// Recommendations and tips are computed concurrently.
func (p *PlannerService) Plan(ctx context.Context, req PlanRequest) (Plan, error) {
	ctx, span := tracer.Start(ctx, "PlannerService.Plan", trace.WithAttributes(
		attribute.String("event.type", string(req.EventType)),
		attribute.Int("event.guests", req.GuestCount),
	))
	defer span.End()

	if !req.EventType.Valid() {
		err := domain.NewValidationErrorWithValue("eventType", "unknown event type", req.EventType)
		span.SetStatus(codes.Error, err.Error())

		return Plan{}, err
	}

	date := p.now()
	if req.EventDate != nil {
		date = *req.EventDate
	}

	type ranked struct {
		recs []domain.Recommendation
		opt  *recommend.OptimizeResult
	}

	r, tips, err := Parallel2(ctx,
		func(context.Context) (ranked, error) {
			recs := p.engine.Recommend(recommend.Request{
				EventType:  req.EventType,
				GuestCount: req.GuestCount,
				Budget:     req.Budget,
				Venue:      req.Venue,
			})

			if req.TargetBudget == nil {
				return ranked{recs: recs}, nil
			}

			opt := recommend.OptimizeDetailed(recs, *req.TargetBudget)

			return ranked{recs: opt.Selected, opt: &opt}, nil
		},
		func(context.Context) ([]string, error) {
			return p.advisor.Tips(date), nil
		},
	)
	if err != nil {
		span.RecordError(err)
		return Plan{}, fmt.Errorf("planning event: %w", err)
	}

	p.metrics.RecordRecommendation(string(req.EventType))

	if r.opt != nil {
		p.metrics.RecordOptimization(r.opt.Trimmed)
	}

	plan := Plan{
		Recommendations: r.recs,
		Total:           domain.TotalEstimatedCost(r.recs),
		Optimization:    r.opt,
		Season:          p.advisor.Season(date),
		Tips:            tips,
	}

	logging.FromContextOr(ctx, p.logger).DebugContext(ctx, "plan computed",
		slog.String("event_type", string(req.EventType)),
		slog.Int("recommendations", len(plan.Recommendations)),
		slog.String("total", plan.Total.String()),
	)

	return plan, nil
}

// Tips returns the seasonal tips for date.
func (p *PlannerService) Tips(date time.Time) ([]string, domain.Season) {
	return p.advisor.Tips(date), p.advisor.Season(date)
}

// Warnings returns the catalog resolution warnings recorded at startup.
func (p *PlannerService) Warnings() []recommend.Warning {
	return p.engine.Warnings()
}
