package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditSession_CommitLeavesOriginalUntouched(t *testing.T) {
	q := testQuotation()
	q.ClientName = "Ravi"

	s := q.Edit()
	lineID, err := s.AddItem(testService("Mehendi Artist", CategoryBeauty, "8000"), 2)
	require.NoError(t, err)
	require.NoError(t, s.SetClient("Ravi Kumar", "+91 90000 00000", "ravi@example.com"))
	require.NoError(t, s.SetDiscountPercentage(dec("5")))

	preview := s.Preview()
	assert.True(t, preview.Subtotal().Equal(dec("16000")))

	edited, err := s.Commit()
	require.NoError(t, err)

	assert.Equal(t, q.ID, edited.ID)
	assert.Equal(t, "Ravi Kumar", edited.ClientName)
	require.Len(t, edited.Items, 1)
	assert.Equal(t, lineID, edited.Items[0].ID)
	assert.True(t, edited.DiscountAmount().Equal(dec("800")))

	assert.Equal(t, "Ravi", q.ClientName)
	assert.Empty(t, q.Items)
}

func TestEditSession_LineOperations(t *testing.T) {
	q := testQuotation()
	s := q.Edit()

	a, err := s.AddItem(testService("Sound System", CategoryEquipment, "10000"), 1)
	require.NoError(t, err)
	b, err := s.AddItem(testService("Candid Photography", CategoryPhotography, "35000"), 1)
	require.NoError(t, err)

	require.NoError(t, s.SetQuantity(a, 3))
	require.NoError(t, s.SetOverridePrice(b, dec("30000")))
	require.NoError(t, s.SetItemNotes(b, "two shooters"))
	assert.True(t, s.Preview().Subtotal().Equal(dec("60000")))

	require.NoError(t, s.ClearOverridePrice(b))
	assert.True(t, s.Preview().Subtotal().Equal(dec("65000")))

	require.NoError(t, s.RemoveItem(a))

	edited, err := s.Commit()
	require.NoError(t, err)
	require.Len(t, edited.Items, 1)
	assert.Equal(t, b, edited.Items[0].ID)
	assert.Equal(t, "two shooters", edited.Items[0].Notes)
	assert.Nil(t, edited.Items[0].OverridePrice)
}

func TestEditSession_Errors(t *testing.T) {
	svc := testService("Sound System", CategoryEquipment, "10000")

	tests := []struct {
		name  string
		run   func(s *EditSession) error
		check func(error) bool
	}{
		{
			name: "add with zero quantity",
			run: func(s *EditSession) error {
				_, err := s.AddItem(svc, 0)
				return err
			},
			check: IsValidation,
		},
		{
			name:  "set quantity on unknown line",
			run:   func(s *EditSession) error { return s.SetQuantity("nope", 2) },
			check: IsNotFound,
		},
		{
			name:  "remove unknown line",
			run:   func(s *EditSession) error { return s.RemoveItem("nope") },
			check: IsNotFound,
		},
		{
			name:  "override unknown line",
			run:   func(s *EditSession) error { return s.SetOverridePrice("nope", dec("1")) },
			check: IsNotFound,
		},
		{
			name:  "negative guest count",
			run:   func(s *EditSession) error { return s.SetGuestCount(-1) },
			check: IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := testQuotation()
			err := tt.run(q.Edit())

			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error type: %v", err)
		})
	}
}

func TestEditSession_SetQuantityBelowOne(t *testing.T) {
	q := testQuotation(QuoteItem{ID: "l1", Service: testService("Sound System", CategoryEquipment, "10000"), Quantity: 1})
	s := q.Edit()

	err := s.SetQuantity("l1", 0)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 1, s.Preview().Items[0].Quantity)
}

func TestEditSession_ClosedAfterCommit(t *testing.T) {
	q := testQuotation()
	s := q.Edit()

	_, err := s.Commit()
	require.NoError(t, err)

	_, err = s.Commit()
	require.ErrorIs(t, err, ErrSessionClosed)
	assert.True(t, IsConflict(err))

	require.ErrorIs(t, s.SetNotes("late"), ErrSessionClosed)
	_, err = s.AddItem(testService("Sound System", CategoryEquipment, "10000"), 1)
	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestEditSession_Finalization(t *testing.T) {
	q := testQuotation()
	s := q.Edit()

	finalized, err := s.ToggleFinalized()
	require.NoError(t, err)
	assert.True(t, finalized)

	_, err = s.AddItem(testService("Return Gifts", CategoryGifts, "150"), 50)
	require.NoError(t, err, "finalized quotations remain editable")

	require.NoError(t, s.SetFinalized(false))
	assert.False(t, s.Preview().Finalized)
}

func TestEditSession_FieldSetters(t *testing.T) {
	q := testQuotation()
	s := q.Edit()
	date := time.Date(2027, time.February, 14, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.SetEvent(EventReception, date))
	require.NoError(t, s.SetVenue("Taj Krishna Banquet Hall"))
	require.NoError(t, s.SetGuestCount(350))
	require.NoError(t, s.SetAdditionalFees(dec("7500")))
	require.NoError(t, s.SetTaxPercentage(dec("12")))
	require.NoError(t, s.SetNotes("evening slot"))

	edited, err := s.Commit()
	require.NoError(t, err)

	assert.Equal(t, EventReception, edited.EventType)
	assert.Equal(t, date, edited.EventDate)
	assert.Equal(t, "Taj Krishna Banquet Hall", edited.Venue)
	assert.Equal(t, 350, edited.GuestCount)
	assert.True(t, edited.AdditionalFees.Equal(dec("7500")))
	assert.True(t, edited.TaxPercentage.Equal(dec("12")))
	assert.Equal(t, "evening slot", edited.Notes)
}

func TestEditSession_Reprice(t *testing.T) {
	q := testQuotation(QuoteItem{ID: "l1", Service: testService("Sound System", CategoryEquipment, "10000"), Quantity: 1})
	s := q.Edit()

	require.NoError(t, s.Reprice(dec("0.8")))

	preview := s.Preview()
	assert.True(t, preview.Items[0].UnitPrice().Equal(dec("8000")))
	assert.Nil(t, q.Items[0].OverridePrice)
}
