package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/event-quote-service/internal/catalog"
	"github.com/jsamuelsen/event-quote-service/internal/domain"
	"github.com/jsamuelsen/event-quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/event-quote-service/internal/recommend"
)

func newTestPlanner(t *testing.T, m *metrics.Domain) *PlannerService {
	t.Helper()

	engine := recommend.NewEngine(recommend.EngineConfig{Catalog: catalog.New(), Logger: discardLogger()})

	return NewPlannerService(PlannerServiceConfig{
		Engine:  engine,
		Metrics: m,
		Clock:   func() time.Time { return fixedNow },
		Logger:  discardLogger(),
	})
}

func TestNewPlannerService_PanicsWithoutEngine(t *testing.T) {
	assert.Panics(t, func() { NewPlannerService(PlannerServiceConfig{}) })
}

func TestPlannerService_Plan(t *testing.T) {
	p := newTestPlanner(t, nil)

	plan, err := p.Plan(context.Background(), PlanRequest{
		EventType:  domain.EventWedding,
		GuestCount: 150,
		Venue:      "Community Hall",
	})
	require.NoError(t, err)

	require.NotEmpty(t, plan.Recommendations)
	assert.True(t, plan.Total.Equal(domain.TotalEstimatedCost(plan.Recommendations)))
	assert.Nil(t, plan.Optimization)
	assert.Equal(t, domain.SeasonWinter, plan.Season)
	assert.Equal(t, "Perfect weather for outdoor events", plan.Tips[0])
}

func TestPlannerService_PlanUsesEventDate(t *testing.T) {
	p := newTestPlanner(t, nil)
	date := time.Date(2027, time.July, 4, 0, 0, 0, 0, time.UTC)

	plan, err := p.Plan(context.Background(), PlanRequest{
		EventType:  domain.EventHaldi,
		GuestCount: 50,
		EventDate:  &date,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SeasonMonsoon, plan.Season)
	assert.Equal(t, "Covered venue is mandatory", plan.Tips[0])
}

func TestPlannerService_PlanWithTargetBudget(t *testing.T) {
	p := newTestPlanner(t, nil)
	target := decimal.NewFromInt(50000)

	plan, err := p.Plan(context.Background(), PlanRequest{
		EventType:    domain.EventWedding,
		GuestCount:   300,
		Venue:        "Palm lawns",
		TargetBudget: &target,
	})
	require.NoError(t, err)

	require.NotNil(t, plan.Optimization)
	assert.True(t, plan.Optimization.Trimmed)
	assert.Equal(t, plan.Optimization.Selected, plan.Recommendations)
	assert.True(t, plan.Total.LessThanOrEqual(target))
	assert.True(t, plan.Total.Equal(plan.Optimization.SelectedTotal))
}

func TestPlannerService_PlanRejectsUnknownEventType(t *testing.T) {
	p := newTestPlanner(t, nil)

	_, err := p.Plan(context.Background(), PlanRequest{EventType: "barbecue"})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPlannerService_IsDeterministic(t *testing.T) {
	p := newTestPlanner(t, nil)
	budget := decimal.NewFromInt(800000)
	req := PlanRequest{EventType: domain.EventWedding, GuestCount: 250, Budget: &budget, Venue: "Garden, Hotel"}

	first, err := p.Plan(context.Background(), req)
	require.NoError(t, err)

	second, err := p.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestPlannerService_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := metrics.NewDomain("quotes", reg)
	require.NoError(t, err)

	p := newTestPlanner(t, m)
	target := decimal.NewFromInt(1)

	_, err = p.Plan(context.Background(), PlanRequest{EventType: domain.EventNaming, GuestCount: 30})
	require.NoError(t, err)

	_, err = p.Plan(context.Background(), PlanRequest{EventType: domain.EventNaming, GuestCount: 30, TargetBudget: &target})
	require.NoError(t, err)

	expected := `
# HELP quotes_recommendations_total Recommendation requests by event type.
# TYPE quotes_recommendations_total counter
quotes_recommendations_total{event_type="naming"} 2
# HELP quotes_budget_optimizations_total Budget optimizations by outcome.
# TYPE quotes_budget_optimizations_total counter
quotes_budget_optimizations_total{result="trimmed"} 1
# HELP quotes_catalog_resolution_warnings Rule fragments that resolved ambiguously or not at all.
# TYPE quotes_catalog_resolution_warnings gauge
quotes_catalog_resolution_warnings 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"quotes_recommendations_total", "quotes_budget_optimizations_total", "quotes_catalog_resolution_warnings"))

	assert.Len(t, p.Warnings(), 5)
}

func TestPlannerService_Tips(t *testing.T) {
	p := newTestPlanner(t, nil)

	tips, season := p.Tips(time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, domain.SeasonSummer, season)
	assert.Len(t, tips, 4)
}
