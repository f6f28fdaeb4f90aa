package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// RecommendationRequest is the body of POST /recommendations.
type RecommendationRequest struct {
	EventType    string           `json:"eventType" validate:"required,eventtype"`
	GuestCount   int              `json:"guestCount" validate:"gte=0,lte=100000"`
	Budget       *decimal.Decimal `json:"budget" validate:"omitempty,gte=0"`
	Venue        string           `json:"venue" validate:"max=200"`
	EventDate    string           `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	TargetBudget *decimal.Decimal `json:"targetBudget" validate:"omitempty,gte=0"`
}

// ParsedEventType returns the validated event type.
func (r *RecommendationRequest) ParsedEventType() domain.EventType {
	e, _ := domain.ParseEventType(r.EventType)
	return e
}

// ParsedEventDate returns the event date, or nil when none was given.
func (r *RecommendationRequest) ParsedEventDate() *time.Time {
	return ParseDate(r.EventDate)
}

// RecommendationResponse is one suggested service.
type RecommendationResponse struct {
	Service           ServiceResponse `json:"service"`
	Priority          string          `json:"priority"`
	PriorityName      string          `json:"priorityName"`
	Reason            string          `json:"reason"`
	SuggestedQuantity int             `json:"suggestedQuantity"`
	EstimatedCost     decimal.Decimal `json:"estimatedCost"`
}

// NewRecommendationResponses converts recommendations, preserving order.
func NewRecommendationResponses(recs []domain.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, len(recs))

	for i, r := range recs {
		out[i] = RecommendationResponse{
			Service:           NewServiceResponse(r.Service),
			Priority:          r.Priority.String(),
			PriorityName:      r.Priority.DisplayName(),
			Reason:            r.Reason,
			SuggestedQuantity: r.SuggestedQuantity,
			EstimatedCost:     r.EstimatedCost,
		}
	}

	return out
}

// OptimizationResponse reports a budget trim.
type OptimizationResponse struct {
	Target        decimal.Decimal          `json:"target"`
	OriginalTotal decimal.Decimal          `json:"originalTotal"`
	SelectedTotal decimal.Decimal          `json:"selectedTotal"`
	Remaining     decimal.Decimal          `json:"remaining"`
	Trimmed       bool                     `json:"trimmed"`
	Dropped       []RecommendationResponse `json:"dropped"`
}

// PlanResponse is the body returned by POST /recommendations.
type PlanResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Total           decimal.Decimal          `json:"total"`
	Optimization    *OptimizationResponse    `json:"optimization,omitempty"`
	Season          domain.Season            `json:"season"`
	Tips            []string                 `json:"tips"`
}

// ParseDate parses a validated calendar date, returning nil for "".
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}

	return &t
}
