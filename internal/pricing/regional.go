// Package pricing scales quotation prices by the city an event is held in.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// Tier is a regional pricing band.
type Tier string

const (
	Tier1 Tier = "tier1"
	Tier2 Tier = "tier2"
	Tier3 Tier = "tier3"
)

var (
	tier1Cities = []string{"hyderabad", "secunderabad", "visakhapatnam", "vijayawada"}
	tier2Cities = []string{"guntur", "nellore", "tirupati", "kakinada", "rajahmundry", "warangal", "nizamabad", "karimnagar"}

	multipliers = map[Tier]decimal.Decimal{
		Tier1: decimal.RequireFromString("1.2"),
		Tier2: decimal.NewFromInt(1),
		Tier3: decimal.RequireFromString("0.8"),
	}
)

// TierOf classifies city by case-insensitive substring match. Cities on
// neither list are tier 3.
func TierOf(city string) Tier {
	switch {
	case domain.MentionsAny(city, tier1Cities):
		return Tier1
	case domain.MentionsAny(city, tier2Cities):
		return Tier2
	default:
		return Tier3
	}
}

// Multiplier returns the price factor for city: 1.2 for tier 1, 1.0 for
// tier 2 and 0.8 otherwise.
func Multiplier(city string) decimal.Decimal {
	return multipliers[TierOf(city)]
}

// Apply overwrites the override price of every line in q with the base price
// scaled for city. Earlier overrides are lost.
func Apply(q *domain.Quotation, city string) decimal.Decimal {
	m := Multiplier(city)
	q.Reprice(m)

	return m
}
