package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// QuotationFields are the editable header fields of a quotation. Nil fields
// are left unchanged.
type QuotationFields struct {
	ClientName         *string          `json:"clientName" validate:"omitempty,max=200"`
	ClientPhone        *string          `json:"clientPhone" validate:"omitempty,max=32"`
	ClientEmail        *string          `json:"clientEmail" validate:"omitempty,max=254"`
	EventType          *string          `json:"eventType" validate:"omitempty,eventtype"`
	EventDate          *string          `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	Venue              *string          `json:"venue" validate:"omitempty,max=200"`
	GuestCount         *int             `json:"guestCount" validate:"omitempty,gte=0,lte=100000"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	AdditionalFees     *decimal.Decimal `json:"additionalFees" validate:"omitempty,gte=0"`
	TaxPercentage      *decimal.Decimal `json:"taxPercentage" validate:"omitempty,gte=0,lte=100"`
	Notes              *string          `json:"notes" validate:"omitempty,max=2000"`
	Finalized          *bool            `json:"finalized"`
}

// Apply writes the non-nil fields to s.
func (f *QuotationFields) Apply(s *domain.EditSession) error {
	cur := s.Preview()

	if f.ClientName != nil || f.ClientPhone != nil || f.ClientEmail != nil {
		if err := s.SetClient(
			valueOr(f.ClientName, cur.ClientName),
			valueOr(f.ClientPhone, cur.ClientPhone),
			valueOr(f.ClientEmail, cur.ClientEmail),
		); err != nil {
			return err
		}
	}

	if f.EventType != nil || f.EventDate != nil {
		eventType := cur.EventType
		if f.EventType != nil {
			parsed, err := domain.ParseEventType(*f.EventType)
			if err != nil {
				return err
			}

			eventType = parsed
		}

		date := cur.EventDate
		if f.EventDate != nil {
			parsed, err := time.Parse(DateLayout, *f.EventDate)
			if err != nil {
				return domain.NewValidationErrorWithValue("eventDate", "must be a date in the format 2006-01-02", *f.EventDate)
			}

			date = parsed
		}

		if err := s.SetEvent(eventType, date); err != nil {
			return err
		}
	}

	steps := []func() error{
		optional(f.Venue, s.SetVenue),
		optional(f.GuestCount, s.SetGuestCount),
		optional(f.DiscountPercentage, s.SetDiscountPercentage),
		optional(f.AdditionalFees, s.SetAdditionalFees),
		optional(f.TaxPercentage, s.SetTaxPercentage),
		optional(f.Notes, s.SetNotes),
		optional(f.Finalized, s.SetFinalized),
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}

func optional[T any](p *T, set func(T) error) func() error {
	return func() error {
		if p == nil {
			return nil
		}

		return set(*p)
	}
}

// CustomServiceRequest describes an ad-hoc service not in the catalog.
type CustomServiceRequest struct {
	Name        string          `json:"name" validate:"required,notempty,max=200"`
	Category    string          `json:"category" validate:"required,category"`
	BasePrice   decimal.Decimal `json:"basePrice" validate:"gte=0"`
	Unit        string          `json:"unit" validate:"max=50"`
	Description string          `json:"description" validate:"max=500"`
	Traditional bool            `json:"traditional"`
}

// ServiceItem converts the request to a domain service.
func (r *CustomServiceRequest) ServiceItem() domain.ServiceItem {
	category, _ := domain.ParseCategory(r.Category)

	return domain.ServiceItem{
		Name:        r.Name,
		Category:    category,
		BasePrice:   r.BasePrice,
		Unit:        r.Unit,
		Description: r.Description,
		Traditional: r.Traditional,
	}
}

// AddItemRequest adds one line, either a catalog service by name or a
// custom service. Quantity defaults to 1.
type AddItemRequest struct {
	ServiceName string                `json:"serviceName" validate:"required_without=Custom,max=200"`
	Category    string                `json:"category" validate:"omitempty,category"`
	Quantity    int                   `json:"quantity" validate:"omitempty,gte=1,lte=100000"`
	Custom      *CustomServiceRequest `json:"custom"`
}

// EffectiveQuantity applies the default quantity.
func (r *AddItemRequest) EffectiveQuantity() int {
	if r.Quantity == 0 {
		return 1
	}

	return r.Quantity
}

// ParsedCategory returns the validated category, or "".
func (r *AddItemRequest) ParsedCategory() domain.Category {
	if r.Category == "" {
		return ""
	}

	c, _ := domain.ParseCategory(r.Category)

	return c
}

// CreateQuotationRequest is the body of POST /quotations.
type CreateQuotationRequest struct {
	QuotationFields

	Items []AddItemRequest `json:"items" validate:"omitempty,dive"`
}

// ItemPatch edits one existing line.
type ItemPatch struct {
	ID            string           `json:"id" validate:"required,uuid"`
	Quantity      *int             `json:"quantity" validate:"omitempty,gte=1,lte=100000"`
	OverridePrice *decimal.Decimal `json:"overridePrice" validate:"omitempty,gte=0"`
	ClearOverride bool             `json:"clearOverride"`
	Notes         *string          `json:"notes" validate:"omitempty,max=500"`
	Remove        bool             `json:"remove"`
}

// Apply writes the patch to s.
func (p *ItemPatch) Apply(s *domain.EditSession) error {
	if p.Remove {
		return s.RemoveItem(p.ID)
	}

	if p.Quantity != nil {
		if err := s.SetQuantity(p.ID, *p.Quantity); err != nil {
			return err
		}
	}

	if p.ClearOverride {
		if err := s.ClearOverridePrice(p.ID); err != nil {
			return err
		}
	} else if p.OverridePrice != nil {
		if err := s.SetOverridePrice(p.ID, *p.OverridePrice); err != nil {
			return err
		}
	}

	if p.Notes != nil {
		return s.SetItemNotes(p.ID, *p.Notes)
	}

	return nil
}

// UpdateQuotationRequest is the body of PATCH /quotations/:id. Field edits
// are applied first, then item patches, then added items.
type UpdateQuotationRequest struct {
	QuotationFields

	Items    []ItemPatch      `json:"items" validate:"omitempty,dive"`
	AddItems []AddItemRequest `json:"addItems" validate:"omitempty,dive"`
}

// Validate rejects patches that edit the same line twice.
func (r *UpdateQuotationRequest) Validate() error {
	seen := make(map[string]bool, len(r.Items))
	for _, p := range r.Items {
		if seen[p.ID] {
			return domain.NewValidationErrorWithValue("items", "line is patched more than once", p.ID)
		}

		seen[p.ID] = true
	}

	return nil
}

// RegionalPricingRequest is the body of POST /quotations/:id/regional-pricing.
type RegionalPricingRequest struct {
	City string `json:"city" validate:"required,notempty,max=100"`
}

// QuoteItemResponse is one line with its derived prices.
type QuoteItemResponse struct {
	ID            string           `json:"id"`
	Service       ServiceResponse  `json:"service"`
	Quantity      int              `json:"quantity"`
	OverridePrice *decimal.Decimal `json:"overridePrice,omitempty"`
	UnitPrice     decimal.Decimal  `json:"unitPrice"`
	LineTotal     decimal.Decimal  `json:"lineTotal"`
	Notes         string           `json:"notes"`
}

// CategoryGroupResponse lists the lines of one category.
type CategoryGroupResponse struct {
	Category     domain.Category     `json:"category"`
	CategoryName string              `json:"categoryName"`
	Items        []QuoteItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
}

// QuotationResponse is a quotation with its totals.
type QuotationResponse struct {
	ID                 string                  `json:"id"`
	ClientName         string                  `json:"clientName"`
	ClientPhone        string                  `json:"clientPhone"`
	ClientEmail        string                  `json:"clientEmail"`
	EventType          domain.EventType        `json:"eventType"`
	EventTypeName      string                  `json:"eventTypeName"`
	EventDate          string                  `json:"eventDate"`
	Venue              string                  `json:"venue"`
	GuestCount         int                     `json:"guestCount"`
	Items              []QuoteItemResponse     `json:"items"`
	DiscountPercentage decimal.Decimal         `json:"discountPercentage"`
	AdditionalFees     decimal.Decimal         `json:"additionalFees"`
	TaxPercentage      decimal.Decimal         `json:"taxPercentage"`
	Notes              string                  `json:"notes"`
	CreatedAt          time.Time               `json:"createdAt"`
	Finalized          bool                    `json:"finalized"`
	Totals             domain.Totals           `json:"totals"`
	Groups             []CategoryGroupResponse `json:"groups,omitempty"`
}

// NewQuotationResponse converts q. Grouped items are included when
// withGroups is set.
func NewQuotationResponse(q domain.Quotation, withGroups bool) QuotationResponse {
	resp := QuotationResponse{
		ID:                 q.ID,
		ClientName:         q.ClientName,
		ClientPhone:        q.ClientPhone,
		ClientEmail:        q.ClientEmail,
		EventType:          q.EventType,
		EventTypeName:      q.EventType.DisplayName(),
		EventDate:          q.EventDate.Format(DateLayout),
		Venue:              q.Venue,
		GuestCount:         q.GuestCount,
		Items:              newItemResponses(q.Items),
		DiscountPercentage: q.DiscountPercentage,
		AdditionalFees:     q.AdditionalFees,
		TaxPercentage:      q.TaxPercentage,
		Notes:              q.Notes,
		CreatedAt:          q.CreatedAt,
		Finalized:          q.Finalized,
		Totals:             q.Totals(),
	}

	if withGroups {
		for _, g := range q.GroupedItems() {
			subtotal := decimal.Zero
			for _, item := range g.Items {
				subtotal = subtotal.Add(item.LineTotal())
			}

			resp.Groups = append(resp.Groups, CategoryGroupResponse{
				Category:     g.Category,
				CategoryName: g.Category.DisplayName(),
				Items:        newItemResponses(g.Items),
				Subtotal:     subtotal,
			})
		}
	}

	return resp
}

func newItemResponses(items []domain.QuoteItem) []QuoteItemResponse {
	out := make([]QuoteItemResponse, len(items))

	for i, item := range items {
		out[i] = QuoteItemResponse{
			ID:            item.ID,
			Service:       NewServiceResponse(item.Service),
			Quantity:      item.Quantity,
			OverridePrice: item.OverridePrice,
			UnitPrice:     item.UnitPrice(),
			LineTotal:     item.LineTotal(),
			Notes:         item.Notes,
		}
	}

	return out
}

// AddItemResponse is returned after adding a line.
type AddItemResponse struct {
	LineID    string            `json:"lineId"`
	Quotation QuotationResponse `json:"quotation"`
}

// RegionalPricingResponse is returned after a bulk re-price.
type RegionalPricingResponse struct {
	MultiplierResponse

	Quotation QuotationResponse `json:"quotation"`
}

// StatisticsResponse is the body of GET /quotations/stats.
type StatisticsResponse = domain.Statistics
