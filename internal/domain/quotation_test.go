package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuotation_Defaults(t *testing.T) {
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	q := NewQuotation(now)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, EventWedding, q.EventType)
	assert.Equal(t, DefaultGuestCount, q.GuestCount)
	assert.True(t, q.TaxPercentage.Equal(dec("18")))
	assert.True(t, q.DiscountPercentage.IsZero())
	assert.True(t, q.AdditionalFees.IsZero())
	assert.Empty(t, q.Items)
	assert.False(t, q.Finalized)
	assert.Equal(t, now, q.CreatedAt)
}

func TestQuotation_Clone_IsDeep(t *testing.T) {
	override := dec("900")
	q := testQuotation(QuoteItem{ID: "l1", Service: testService("Jasmine Strings", CategoryFlowers, "800"), Quantity: 2, OverridePrice: &override})

	c := q.Clone()
	c.Items[0].Quantity = 10
	*c.Items[0].OverridePrice = dec("1")

	assert.Equal(t, 2, q.Items[0].Quantity)
	assert.True(t, q.Items[0].OverridePrice.Equal(dec("900")))
}

func TestQuotation_Duplicate(t *testing.T) {
	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	q := NewQuotation(created)
	q.ClientName = "Lakshmi"
	q.Finalized = true
	q.Items = []QuoteItem{NewQuoteItem(testService("Purohit/Priest", CategoryTraditional, "15000"), 1)}

	later := created.Add(48 * time.Hour)
	dup := q.Duplicate(later)

	assert.NotEqual(t, q.ID, dup.ID)
	assert.Equal(t, "Lakshmi (Copy)", dup.ClientName)
	assert.Equal(t, later, dup.CreatedAt)
	assert.False(t, dup.Finalized)
	require.Len(t, dup.Items, 1)
	assert.NotEqual(t, q.Items[0].ID, dup.Items[0].ID)
	assert.True(t, dup.Items[0].Service.SameService(q.Items[0].Service))
	assert.True(t, q.GrandTotal().Equal(dup.GrandTotal()))

	assert.True(t, q.Finalized, "source must not change")
}

func TestQuotation_Reprice_OverwritesOverrides(t *testing.T) {
	manual := dec("1")
	q := testQuotation(
		QuoteItem{ID: "a", Service: testService("Stage Decoration", CategoryDecoration, "45000"), Quantity: 1, OverridePrice: &manual},
		QuoteItem{ID: "b", Service: testService("Sound System", CategoryEquipment, "10000"), Quantity: 2},
	)

	q.Reprice(dec("1.2"))

	require.NotNil(t, q.Items[0].OverridePrice)
	assert.True(t, q.Items[0].OverridePrice.Equal(dec("54000")))
	assert.True(t, q.Items[1].OverridePrice.Equal(dec("12000")))
	assert.True(t, q.Subtotal().Equal(dec("78000")))
}

func TestQuotation_ItemByID(t *testing.T) {
	q := testQuotation(QuoteItem{ID: "a"}, QuoteItem{ID: "b"})

	assert.Equal(t, 1, q.ItemByID("b"))
	assert.Equal(t, -1, q.ItemByID("missing"))
}

func TestServiceItem_Key(t *testing.T) {
	a := testService("Sound System", CategoryEquipment, "10000")
	b := a
	b.Description = "different text"
	b.Unit = "per day"

	c := a
	c.BasePrice = dec("10000.00")

	d := a
	d.BasePrice = dec("12000")

	assert.True(t, a.SameService(b))
	assert.True(t, a.SameService(c), "equal decimals with different exponents share a key")
	assert.False(t, a.SameService(d))
}

func TestParseEventType(t *testing.T) {
	tests := []struct {
		input    string
		expected EventType
		wantErr  bool
	}{
		{input: "wedding", expected: EventWedding},
		{input: "WEDDING", expected: EventWedding},
		{input: "Telugu Wedding", expected: EventWedding},
		{input: " naming ", expected: EventNaming},
		{input: "Griha Pravesh", expected: EventHousewarming},
		{input: "funeral", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEventType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEventTypes_HaveNames(t *testing.T) {
	for _, e := range EventTypes() {
		assert.True(t, e.Valid())
		assert.NotEqual(t, string(e), e.DisplayName(), "%s has no display name", e)
		assert.NotEmpty(t, e.LocalName(), "%s has no local name", e)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Photography & Videography")
	require.NoError(t, err)
	assert.Equal(t, CategoryPhotography, c)

	c, err = ParseCategory("beauty")
	require.NoError(t, err)
	assert.Equal(t, CategoryBeauty, c)

	_, err = ParseCategory("plumbing")
	assert.True(t, IsValidation(err))
}

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected Season
	}{
		{time.January, SeasonWinter},
		{time.February, SeasonWinter},
		{time.March, SeasonSummer},
		{time.May, SeasonSummer},
		{time.June, SeasonMonsoon},
		{time.September, SeasonMonsoon},
		{time.October, SeasonWinter},
		{time.December, SeasonWinter},
		{time.Month(0), SeasonNone},
		{time.Month(13), SeasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, SeasonOf(tt.month))
		})
	}
}

func TestMentionsAny(t *testing.T) {
	tests := []struct {
		name  string
		place string
		want  bool
	}{
		{name: "exact", place: "hyderabad", want: true},
		{name: "mixed case inside a longer name", place: "Grand Hotel, Secunderabad", want: true},
		{name: "no keyword", place: "Guntur", want: false},
		{name: "empty place", place: "", want: false},
	}

	keywords := []string{"hyderabad", "secunderabad"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MentionsAny(tt.place, keywords))
		})
	}
}
