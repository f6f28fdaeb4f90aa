package recommend

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// OptimizeResult describes a budget trim.
type OptimizeResult struct {
	// Selected is the kept subset, in scan order.
	Selected []domain.Recommendation `json:"selected"`

	// Dropped holds the entries that did not fit, in scan order.
	Dropped []domain.Recommendation `json:"dropped"`

	Target        decimal.Decimal `json:"target"`
	OriginalTotal decimal.Decimal `json:"originalTotal"`
	SelectedTotal decimal.Decimal `json:"selectedTotal"`
	Remaining     decimal.Decimal `json:"remaining"`

	// Trimmed is false when the input already fit and was returned as is.
	Trimmed bool `json:"trimmed"`
}

// Optimize trims recs to fit target. See OptimizeDetailed.
func Optimize(recs []domain.Recommendation, target decimal.Decimal) []domain.Recommendation {
	return OptimizeDetailed(recs, target).Selected
}

// OptimizeDetailed keeps recs unchanged when their total fits target.
// Otherwise it scans the high, medium and low entries, each in input order,
// keeping an entry whenever the remaining budget covers its cost. The scan
// is greedy: a cheaper entry in a lower tier never displaces a costlier one
// above it.
func OptimizeDetailed(recs []domain.Recommendation, target decimal.Decimal) OptimizeResult {
	total := domain.TotalEstimatedCost(recs)

	if total.LessThanOrEqual(target) {
		return OptimizeResult{
			Selected:      slices.Clone(recs),
			Dropped:       []domain.Recommendation{},
			Target:        target,
			OriginalTotal: total,
			SelectedTotal: total,
			Remaining:     target.Sub(total),
		}
	}

	res := OptimizeResult{
		Selected:      []domain.Recommendation{},
		Dropped:       []domain.Recommendation{},
		Target:        target,
		OriginalTotal: total,
		Trimmed:       true,
	}

	remaining := target

	for _, p := range []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		for _, r := range recs {
			if r.Priority != p {
				continue
			}

			if remaining.GreaterThanOrEqual(r.EstimatedCost) {
				res.Selected = append(res.Selected, r)
				remaining = remaining.Sub(r.EstimatedCost)
			} else {
				res.Dropped = append(res.Dropped, r)
			}
		}
	}

	res.Remaining = remaining
	res.SelectedTotal = target.Sub(remaining)

	return res
}
