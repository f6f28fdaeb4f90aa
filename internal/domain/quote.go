package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteItem binds a quantity and an optional override price to one service.
type QuoteItem struct {
	// ID identifies the line within its quotation. It is only used to address
	// the line during editing.
	ID string `json:"id"`

	Service  ServiceItem `json:"service"`
	Quantity int         `json:"quantity"`

	// OverridePrice replaces the service's base price when set.
	OverridePrice *decimal.Decimal `json:"overridePrice,omitempty"`

	Notes string `json:"notes"`
}

// NewQuoteItem creates a line for service with a fresh line ID.
func NewQuoteItem(service ServiceItem, quantity int) QuoteItem {
	return QuoteItem{
		ID:       uuid.NewString(),
		Service:  service,
		Quantity: quantity,
	}
}

// UnitPrice is the override price if present, else the service's base price.
func (i QuoteItem) UnitPrice() decimal.Decimal {
	if i.OverridePrice != nil {
		return *i.OverridePrice
	}

	return i.Service.BasePrice
}

// LineTotal is the unit price times the quantity.
func (i QuoteItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i QuoteItem) clone() QuoteItem {
	c := i
	if i.OverridePrice != nil {
		p := *i.OverridePrice
		c.OverridePrice = &p
	}

	return c
}
