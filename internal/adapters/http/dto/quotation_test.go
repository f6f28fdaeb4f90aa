package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleQuotation() domain.Quotation {
	q := domain.NewQuotation(time.Date(2026, time.November, 20, 10, 0, 0, 0, time.UTC))
	q.ClientName = "Sravani"
	q.ClientPhone = "+91 98480 22338"
	q.Items = []domain.QuoteItem{
		{ID: "l1", Quantity: 2, Service: domain.ServiceItem{Name: "Sound System", Category: domain.CategoryEquipment, BasePrice: decimal.NewFromInt(15000)}},
		{ID: "l2", Quantity: 1, Service: domain.ServiceItem{Name: "Candid Photography", Category: domain.CategoryPhotography, BasePrice: decimal.NewFromInt(35000)}},
	}

	return q
}

func TestQuotationFields_Apply(t *testing.T) {
	q := sampleQuotation()
	s := q.Edit()

	f := QuotationFields{
		ClientEmail:        ptr("sravani@example.com"),
		EventType:          ptr("Haldi Ceremony"),
		GuestCount:         ptr(0),
		DiscountPercentage: ptr(decimal.NewFromInt(5)),
		Finalized:          ptr(true),
	}
	require.NoError(t, f.Apply(s))

	got, err := s.Commit()
	require.NoError(t, err)

	assert.Equal(t, "Sravani", got.ClientName, "unset client fields are kept")
	assert.Equal(t, "+91 98480 22338", got.ClientPhone)
	assert.Equal(t, "sravani@example.com", got.ClientEmail)
	assert.Equal(t, domain.EventHaldi, got.EventType)
	assert.Equal(t, q.EventDate, got.EventDate, "date kept when only the type changes")
	assert.Equal(t, 0, got.GuestCount)
	assert.True(t, got.DiscountPercentage.Equal(decimal.NewFromInt(5)))
	assert.True(t, got.Finalized)
	assert.Equal(t, q.Venue, got.Venue)
}

func TestQuotationFields_ApplyEventDate(t *testing.T) {
	q := sampleQuotation()
	s := q.Edit()

	require.NoError(t, (&QuotationFields{EventDate: ptr("2027-02-14")}).Apply(s))

	got, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, domain.EventWedding, got.EventType)
	assert.Equal(t, "2027-02-14", got.EventDate.Format(DateLayout))
}

func TestQuotationFields_ApplyRejects(t *testing.T) {
	tests := []struct {
		name   string
		fields QuotationFields
	}{
		{name: "negative guests", fields: QuotationFields{GuestCount: ptr(-1)}},
		{name: "unknown event", fields: QuotationFields{EventType: ptr("graduation")}},
		{name: "bad date", fields: QuotationFields{EventDate: ptr("14/02/2027")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := sampleQuotation()
			err := tt.fields.Apply(q.Edit())

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestItemPatch_Apply(t *testing.T) {
	q := sampleQuotation()
	s := q.Edit()

	require.NoError(t, (&ItemPatch{ID: "l1", Quantity: ptr(3), OverridePrice: ptr(decimal.NewFromInt(14000)), Notes: ptr("two speakers")}).Apply(s))
	require.NoError(t, (&ItemPatch{ID: "l2", Remove: true}).Apply(s))

	got, err := s.Commit()
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, "two speakers", got.Items[0].Notes)
	assert.True(t, got.Items[0].LineTotal().Equal(decimal.NewFromInt(42000)))

	s = got.Edit()
	require.NoError(t, (&ItemPatch{ID: "l1", ClearOverride: true, OverridePrice: ptr(decimal.NewFromInt(1))}).Apply(s))

	got, err = s.Commit()
	require.NoError(t, err)
	assert.Nil(t, got.Items[0].OverridePrice)

	err = (&ItemPatch{ID: "missing", Quantity: ptr(1)}).Apply(got.Edit())
	assert.True(t, domain.IsNotFound(err))
}

func TestAddItemRequest_Defaults(t *testing.T) {
	r := AddItemRequest{ServiceName: "Sound System", Category: "Equipment & Technology"}
	assert.Equal(t, 1, r.EffectiveQuantity())

	r.Quantity = 4
	assert.Equal(t, 4, r.EffectiveQuantity())

	custom := CustomServiceRequest{Name: "Kolam Art", Category: "decoration", BasePrice: decimal.NewFromInt(3000)}
	item := custom.ServiceItem()
	assert.Equal(t, domain.CategoryDecoration, item.Category)
	assert.True(t, item.BasePrice.Equal(decimal.NewFromInt(3000)))

	assert.Equal(t, domain.Category(""), (&AddItemRequest{}).ParsedCategory())
}

func TestNewQuotationResponse(t *testing.T) {
	q := sampleQuotation()
	q.DiscountPercentage = decimal.NewFromInt(10)

	resp := NewQuotationResponse(q, true)

	assert.Equal(t, q.ID, resp.ID)
	assert.Equal(t, "Telugu Wedding", resp.EventTypeName)
	assert.Equal(t, "2026-11-20", resp.EventDate)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.NewFromInt(30000)))
	assert.True(t, resp.Totals.Subtotal.Equal(decimal.NewFromInt(65000)))
	assert.True(t, resp.Totals.DiscountAmount.Equal(decimal.NewFromInt(6500)))

	require.Len(t, resp.Groups, 2)
	assert.Equal(t, domain.CategoryPhotography, resp.Groups[0].Category)
	assert.True(t, resp.Groups[0].Subtotal.Equal(decimal.NewFromInt(35000)))
	assert.Equal(t, domain.CategoryEquipment, resp.Groups[1].Category)

	assert.Empty(t, NewQuotationResponse(q, false).Groups)
}
