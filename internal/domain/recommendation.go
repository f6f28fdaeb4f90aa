package domain

import "github.com/shopspring/decimal"

// Priority ranks a recommendation. Higher weights sort first.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// DisplayName returns the label shown next to a recommendation.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityHigh:
		return "Essential"
	case PriorityMedium:
		return "Recommended"
	case PriorityLow:
		return "Optional"
	default:
		return "Unknown"
	}
}

// String returns the lower-case tier name.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// Recommendation is a suggested service with its tier, reason and estimated
// cost. EstimatedCost is always the base price times the suggested quantity.
type Recommendation struct {
	Service           ServiceItem     `json:"service"`
	Priority          Priority        `json:"priority"`
	Reason            string          `json:"reason"`
	SuggestedQuantity int             `json:"suggestedQuantity"`
	EstimatedCost     decimal.Decimal `json:"estimatedCost"`
}

// NewRecommendation builds a recommendation and derives its estimated cost.
func NewRecommendation(service ServiceItem, priority Priority, reason string, quantity int) Recommendation {
	return Recommendation{
		Service:           service,
		Priority:          priority,
		Reason:            reason,
		SuggestedQuantity: quantity,
		EstimatedCost:     service.BasePrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// TotalEstimatedCost sums the estimated cost of recs.
func TotalEstimatedCost(recs []Recommendation) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.EstimatedCost)
	}

	return total
}
