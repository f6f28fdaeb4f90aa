package dto

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

func TestValidator_Singleton(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}

func TestValidate_DomainTags(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	over := decimal.RequireFromString("100.5")
	ok := decimal.RequireFromString("12.5")

	tests := []struct {
		name      string
		input     any
		wantField string
	}{
		{name: "valid recommendation", input: &RecommendationRequest{EventType: "wedding", GuestCount: 100}},
		{name: "display name accepted", input: &RecommendationRequest{EventType: "Griha Pravesh"}},
		{name: "unknown event type", input: &RecommendationRequest{EventType: "graduation"}, wantField: "eventType"},
		{name: "negative budget", input: &RecommendationRequest{EventType: "wedding", Budget: &neg}, wantField: "budget"},
		{name: "bad event date", input: &RecommendationRequest{EventType: "wedding", EventDate: "2026/12/01"}, wantField: "eventDate"},
		{name: "valid fields", input: &QuotationFields{DiscountPercentage: &ok}},
		{name: "discount above 100", input: &QuotationFields{DiscountPercentage: &over}, wantField: "discountPercentage"},
		{name: "negative fees", input: &QuotationFields{AdditionalFees: &neg}, wantField: "additionalFees"},
		{name: "unknown category", input: &ServiceQuery{Category: "fireworks"}, wantField: "category"},
		{name: "category display name", input: &ServiceQuery{Category: "Photography & Videography"}},
		{name: "add item needs a service", input: &AddItemRequest{}, wantField: "serviceName"},
		{name: "custom item", input: &AddItemRequest{Custom: &CustomServiceRequest{Name: "Kolam Art", Category: "decoration"}}},
		{name: "custom item negative price", input: &AddItemRequest{Custom: &CustomServiceRequest{Name: "Kolam Art", Category: "decoration", BasePrice: neg}}, wantField: "basePrice"},
		{name: "item patch needs id", input: &ItemPatch{}, wantField: "id"},
		{name: "item patch malformed id", input: &ItemPatch{ID: "line-1"}, wantField: "id"},
		{name: "item patch line id", input: &ItemPatch{ID: "9b2f6c1e-4d3a-4f8e-9c7b-2a1d5e6f7081"}},
		{name: "blank city", input: &RegionalPricingRequest{City: "  "}, wantField: "city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, ValidationErrors(err), tt.wantField)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantBinding bool
		wantValid   bool
	}{
		{name: "valid", body: `{"eventType":"haldi","guestCount":80,"budget":"50000"}`, wantValid: true},
		{name: "malformed", body: `{"eventType":`, wantBinding: true},
		{name: "wrong type", body: `{"eventType":"haldi","guestCount":"many"}`, wantBinding: true},
		{name: "invalid", body: `{"guestCount":80}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req RecommendationRequest
			err := BindAndValidate(c, &req)

			switch {
			case tt.wantValid:
				require.NoError(t, err)
				assert.True(t, req.Budget.Equal(decimal.NewFromInt(50000)))
			case tt.wantBinding:
				assert.ErrorIs(t, err, ErrBinding)
			default:
				assert.ErrorIs(t, err, ErrValidation)
				assert.True(t, IsValidationError(err))
			}
		})
	}
}

func TestBindQueryAndValidate(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?category=catering&traditional=true&city=Tirupati", nil)

	var q ServiceQuery
	require.NoError(t, BindQueryAndValidate(c, &q))
	assert.Equal(t, "catering", q.Category)
	assert.True(t, q.Traditional)
	assert.Equal(t, "Tirupati", q.City)

	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=abc", nil)

	var p PaginationRequest
	assert.ErrorIs(t, BindQueryAndValidate(c, &p), ErrBinding)
}

func TestValidationMessage(t *testing.T) {
	type sample struct {
		Name     string `json:"name" validate:"required"`
		Count    int    `json:"count" validate:"min=1,max=10"`
		Text     string `json:"text" validate:"min=5"`
		Age      int    `json:"age" validate:"lte=120"`
		Username string `json:"username" validate:"notempty"`
		ID       string `json:"id" validate:"uuid"`
		Event    string `json:"event" validate:"eventtype"`
		Date     string `json:"date" validate:"datetime=2006-01-02"`
	}

	err := Validator().Struct(&sample{
		Count:    20,
		Text:     "abc",
		Age:      150,
		Username: "  ",
		ID:       "not-a-uuid",
		Event:    "party",
		Date:     "soon",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	want := map[string]string{
		"name":     "this field is required",
		"count":    "must be at most 10",
		"text":     "must be at least 5 characters",
		"age":      "must be less than or equal to 120",
		"username": "must not be empty",
		"id":       "must be a valid UUID",
		"event":    "must be a known event type",
		"date":     "must be a date in the format 2006-01-02",
	}

	got := ValidationErrors(err)
	assert.Equal(t, want, got)
}

func TestMinMaxMessage(t *testing.T) {
	assert.Equal(t, "must be at least 3 characters", minMaxMessage("min", "3", reflect.String))
	assert.Equal(t, "must be at most 3", minMaxMessage("max", "3", reflect.Int))
}

func TestValidateAll(t *testing.T) {
	const (
		lineA = "9b2f6c1e-4d3a-4f8e-9c7b-2a1d5e6f7081"
		lineB = "0c4e7d2a-8b1f-4a6c-b3e9-5f2d1a7c8e90"
	)

	tests := []struct {
		name       string
		input      any
		wantDomain bool
	}{
		{name: "distinct lines", input: &UpdateQuotationRequest{Items: []ItemPatch{{ID: lineA}, {ID: lineB, Remove: true}}}},
		{name: "no custom rule", input: &RegionalPricingRequest{City: "Vijayawada"}},
		{name: "line patched twice", input: &UpdateQuotationRequest{Items: []ItemPatch{{ID: lineA}, {ID: lineA, Remove: true}}}, wantDomain: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAll(tt.input)

			if !tt.wantDomain {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.True(t, domain.IsValidation(err))

			status, resp := MapDomainError(err)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
			assert.Contains(t, resp.Error.Details, "items")
		})
	}
}
