package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Defaults applied to a freshly created quotation.
const (
	DefaultGuestCount    = 100
	DefaultTaxPercentage = 18

	copySuffix = " (Copy)"
)

// Quotation is a priced proposal for one event. Derived totals are never
// stored; every getter recomputes them from Items and the percentage fields.
type Quotation struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	ClientEmail string    `json:"clientEmail"`
	EventType   EventType `json:"eventType"`
	EventDate   time.Time `json:"eventDate"`
	Venue       string    `json:"venue"`
	GuestCount  int       `json:"guestCount"`

	Items []QuoteItem `json:"items"`

	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	AdditionalFees     decimal.Decimal `json:"additionalFees"`
	TaxPercentage      decimal.Decimal `json:"taxPercentage"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	Finalized bool      `json:"finalized"`
}

// NewQuotation returns an empty wedding quotation with the standard defaults.
func NewQuotation(now time.Time) Quotation {
	return Quotation{
		ID:                 uuid.NewString(),
		EventType:          EventWedding,
		EventDate:          now,
		GuestCount:         DefaultGuestCount,
		Items:              []QuoteItem{},
		DiscountPercentage: decimal.Zero,
		AdditionalFees:     decimal.Zero,
		TaxPercentage:      decimal.NewFromInt(DefaultTaxPercentage),
		CreatedAt:          now,
	}
}

// Clone returns a deep copy sharing no mutable state with q.
func (q *Quotation) Clone() Quotation {
	c := *q
	c.Items = make([]QuoteItem, len(q.Items))

	for i := range q.Items {
		c.Items[i] = q.Items[i].clone()
	}

	return c
}

// Duplicate copies q under a new identity: the client name gets a copy
// suffix, the creation time is reset and the copy starts unfinalized.
func (q *Quotation) Duplicate(now time.Time) Quotation {
	c := q.Clone()
	c.ID = uuid.NewString()
	c.ClientName = q.ClientName + copySuffix
	c.CreatedAt = now
	c.Finalized = false

	for i := range c.Items {
		c.Items[i].ID = uuid.NewString()
	}

	return c
}

// Reprice overwrites every line's override price with base price times
// multiplier. Existing overrides are discarded.
func (q *Quotation) Reprice(multiplier decimal.Decimal) {
	for i := range q.Items {
		p := q.Items[i].Service.BasePrice.Mul(multiplier)
		q.Items[i].OverridePrice = &p
	}
}

// ItemByID returns the index of the line with the given ID, or -1.
func (q *Quotation) ItemByID(id string) int {
	for i := range q.Items {
		if q.Items[i].ID == id {
			return i
		}
	}

	return -1
}

// SortByCreation orders qs by creation time, then ID.
func SortByCreation(qs []Quotation) {
	slices.SortFunc(qs, func(a, b Quotation) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
}
