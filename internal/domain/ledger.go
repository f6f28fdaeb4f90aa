package domain

import "github.com/shopspring/decimal"

// Totals holds the six monetary figures of a quotation.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	AfterDiscount  decimal.Decimal `json:"afterDiscount"`
	AdditionalFees decimal.Decimal `json:"additionalFees"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
}

// CategoryGroup is the set of lines belonging to one category.
type CategoryGroup struct {
	Category Category    `json:"category"`
	Items    []QuoteItem `json:"items"`
}

// percentOf returns amount * pct / 100 without rounding.
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Shift(-2)
}

// Subtotal is the sum of all line totals.
func (q Quotation) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range q.Items {
		total = total.Add(q.Items[i].LineTotal())
	}

	return total
}

// DiscountAmount is subtotal * discountPercentage / 100.
func (q Quotation) DiscountAmount() decimal.Decimal {
	return percentOf(q.Subtotal(), q.DiscountPercentage)
}

// AfterDiscount is subtotal - discountAmount.
func (q Quotation) AfterDiscount() decimal.Decimal {
	return q.Subtotal().Sub(q.DiscountAmount())
}

// TaxAmount is (afterDiscount + additionalFees) * taxPercentage / 100.
func (q Quotation) TaxAmount() decimal.Decimal {
	return percentOf(q.AfterDiscount().Add(q.AdditionalFees), q.TaxPercentage)
}

// GrandTotal is afterDiscount + additionalFees + taxAmount.
func (q Quotation) GrandTotal() decimal.Decimal {
	return q.AfterDiscount().Add(q.AdditionalFees).Add(q.TaxAmount())
}

// Totals computes all six figures from a single pass over the items.
func (q Quotation) Totals() Totals {
	subtotal := q.Subtotal()
	discount := percentOf(subtotal, q.DiscountPercentage)
	after := subtotal.Sub(discount)
	taxable := after.Add(q.AdditionalFees)
	tax := percentOf(taxable, q.TaxPercentage)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		AfterDiscount:  after,
		AdditionalFees: q.AdditionalFees,
		TaxAmount:      tax,
		GrandTotal:     taxable.Add(tax),
	}
}

// GroupedItems returns the lines grouped by category in category order.
// Categories with no lines are omitted; lines keep their relative order.
func (q Quotation) GroupedItems() []CategoryGroup {
	byCategory := make(map[Category][]QuoteItem)
	for _, item := range q.Items {
		byCategory[item.Service.Category] = append(byCategory[item.Service.Category], item)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, c := range categoryOrder {
		if items, ok := byCategory[c]; ok {
			groups = append(groups, CategoryGroup{Category: c, Items: items})
		}
	}

	return groups
}
