package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// DateLayout is the calendar date format used in query strings and bodies.
const DateLayout = "2006-01-02"

// ServiceQuery filters GET /services.
type ServiceQuery struct {
	Category    string `form:"category" json:"category" validate:"omitempty,category"`
	Traditional bool   `form:"traditional" json:"traditional"`
	City        string `form:"city" json:"city" validate:"max=100"`
	Date        string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ServiceResponse is one catalog entry.
type ServiceResponse struct {
	Name         string          `json:"name"`
	Category     domain.Category `json:"category"`
	CategoryName string          `json:"categoryName"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Unit         string          `json:"unit"`
	Description  string          `json:"description"`
	Traditional  bool            `json:"traditional"`
}

// NewServiceResponse converts a catalog entry.
func NewServiceResponse(s domain.ServiceItem) ServiceResponse {
	return ServiceResponse{
		Name:         s.Name,
		Category:     s.Category,
		CategoryName: s.Category.DisplayName(),
		BasePrice:    s.BasePrice,
		Unit:         s.Unit,
		Description:  s.Description,
		Traditional:  s.Traditional,
	}
}

// NewServiceResponses converts a list of catalog entries.
func NewServiceResponses(items []domain.ServiceItem) []ServiceResponse {
	out := make([]ServiceResponse, len(items))
	for i, s := range items {
		out[i] = NewServiceResponse(s)
	}

	return out
}

// EventTypeResponse describes one event type.
type EventTypeResponse struct {
	Key       domain.EventType `json:"key"`
	Name      string           `json:"name"`
	LocalName string           `json:"localName"`
}

// NewEventTypeResponses lists every event type in display order.
func NewEventTypeResponses() []EventTypeResponse {
	types := domain.EventTypes()
	out := make([]EventTypeResponse, len(types))

	for i, e := range types {
		out[i] = EventTypeResponse{Key: e, Name: e.DisplayName(), LocalName: e.LocalName()}
	}

	return out
}

// TipsQuery selects the date for GET /seasonal-tips.
type TipsQuery struct {
	Date string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TipsResponse carries seasonal tips.
type TipsResponse struct {
	Date   string        `json:"date"`
	Season domain.Season `json:"season"`
	Tips   []string      `json:"tips"`
}

// MultiplierQuery selects the city for GET /pricing/multiplier.
type MultiplierQuery struct {
	City string `form:"city" json:"city" validate:"required,notempty,max=100"`
}

// MultiplierResponse reports a city's pricing tier.
type MultiplierResponse struct {
	City       string          `json:"city"`
	Tier       string          `json:"tier"`
	Multiplier decimal.Decimal `json:"multiplier"`
}
