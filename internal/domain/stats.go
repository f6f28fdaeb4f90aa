package domain

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// popularServiceLimit caps the popular services list.
const popularServiceLimit = 10

// ServiceUsage is the total booked quantity of one service across quotations.
type ServiceUsage struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Quantity int      `json:"quantity"`
}

// Statistics summarizes a set of quotations. Revenue only counts finalized
// quotations; popularity counts every quotation.
type Statistics struct {
	QuotationCount  int             `json:"quotationCount"`
	FinalizedCount  int             `json:"finalizedCount"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	AverageValue    decimal.Decimal `json:"averageValue"`
	PopularServices []ServiceUsage  `json:"popularServices"`
}

// Summarize computes revenue and popularity figures for quotations.
func Summarize(quotations []Quotation) Statistics {
	stats := Statistics{
		QuotationCount: len(quotations),
		TotalRevenue:   decimal.Zero,
		AverageValue:   decimal.Zero,
	}

	usage := make(map[string]*ServiceUsage)

	for i := range quotations {
		q := &quotations[i]
		if q.Finalized {
			stats.FinalizedCount++
			stats.TotalRevenue = stats.TotalRevenue.Add(q.GrandTotal())
		}

		for _, item := range q.Items {
			u, ok := usage[item.Service.Name]
			if !ok {
				u = &ServiceUsage{Name: item.Service.Name, Category: item.Service.Category}
				usage[item.Service.Name] = u
			}

			u.Quantity += item.Quantity
		}
	}

	if stats.FinalizedCount > 0 {
		stats.AverageValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.FinalizedCount)))
	}

	popular := make([]ServiceUsage, 0, len(usage))
	for _, u := range usage {
		popular = append(popular, *u)
	}

	slices.SortFunc(popular, func(a, b ServiceUsage) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	if len(popular) > popularServiceLimit {
		popular = popular[:popularServiceLimit]
	}

	stats.PopularServices = popular

	return stats
}
