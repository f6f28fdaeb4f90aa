// Package recommend suggests services for an event and trims suggestions to
// a budget.
//
// All rule fragments are resolved to catalog entries once, when the Engine is
// built. Recommend itself is a pure function of its request: two calls with
// the same request return equal lists in the same order.
package recommend

import (
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// Request carries the event parameters recommendations depend on.
type Request struct {
	EventType  domain.EventType
	GuestCount int

	// Budget is the client's stated budget, if any. It only gates premium
	// suggestions; use Optimize to trim to a target.
	Budget *decimal.Decimal

	Venue string
}

// resolvedTier is a tier whose fragments have been bound to services.
type resolvedTier struct {
	tier
	services []domain.ServiceItem
}

// EngineConfig contains the dependencies of an Engine.
type EngineConfig struct {
	Catalog ServiceSource
	Logger  *slog.Logger
}

// Engine produces ranked service recommendations.
type Engine struct {
	tables   map[string][]resolvedTier
	venue    *VenueAdjuster
	warnings []Warning
	logger   *slog.Logger
}

// NewEngine resolves every rule table against the catalog. Fragments that
// match nothing are dropped from their table; they and any ambiguous matches
// are reported by Warnings.
func NewEngine(cfg EngineConfig) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "recommend.Engine"))
	r := newResolver(cfg.Catalog, logger)

	tables := make(map[string][]resolvedTier)
	for _, rs := range allRuleSets() {
		tiers := make([]resolvedTier, 0, len(rs.tiers))
		for _, t := range rs.tiers {
			tiers = append(tiers, resolvedTier{
				tier:     t,
				services: r.resolveAll(rs.name+"/"+t.name, t.fragments),
			})
		}

		tables[rs.name] = tiers
	}

	e := &Engine{
		tables: tables,
		venue:  newVenueAdjuster(r),
		logger: logger,
	}
	e.warnings = slices.Clone(r.warnings)

	return e
}

// Warnings returns the data-quality problems found while resolving rules.
func (e *Engine) Warnings() []Warning {
	return slices.Clone(e.warnings)
}

// Recommend returns suggestions for req, highest priority first. Within a
// priority, entries keep their rule order. The same service may appear in
// more than one tier.
func (e *Engine) Recommend(req Request) []domain.Recommendation {
	rs := ruleSetFor(req.EventType)

	var recs []domain.Recommendation

	for _, t := range e.tables[rs.name] {
		if !t.appliesTo(req) {
			continue
		}

		reason := t.reason(req)
		for _, s := range t.services {
			qty := t.fixedQuantity
			if qty <= 0 {
				qty = SuggestedQuantity(s, req.GuestCount)
			}

			recs = append(recs, domain.NewRecommendation(s, t.priority, reason, qty))
		}
	}

	if req.Venue != "" {
		recs = e.venue.Adjust(recs, req.Venue)
	}

	slices.SortStableFunc(recs, func(a, b domain.Recommendation) int {
		return int(b.Priority) - int(a.Priority)
	})

	e.logger.Debug("recommendations computed",
		slog.String("event_type", string(req.EventType)),
		slog.String("rules", rs.name),
		slog.Int("count", len(recs)),
	)

	if recs == nil {
		return []domain.Recommendation{}
	}

	return recs
}
