package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)

	assert.Zero(t, stats.QuotationCount)
	assert.Zero(t, stats.FinalizedCount)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.AverageValue.IsZero())
	assert.Empty(t, stats.PopularServices)
}

func TestSummarize_RevenueCountsFinalizedOnly(t *testing.T) {
	q1 := testQuotation(NewQuoteItem(testService("Stage Decoration", CategoryDecoration, "10000"), 1))
	q1.TaxPercentage = dec("0")
	q1.Finalized = true

	q2 := testQuotation(NewQuoteItem(testService("Stage Decoration", CategoryDecoration, "10000"), 3))
	q2.TaxPercentage = dec("0")
	q2.Finalized = true

	draft := testQuotation(NewQuoteItem(testService("Stage Decoration", CategoryDecoration, "10000"), 50))

	stats := Summarize([]Quotation{q1, q2, draft})

	assert.Equal(t, 3, stats.QuotationCount)
	assert.Equal(t, 2, stats.FinalizedCount)
	assert.True(t, stats.TotalRevenue.Equal(dec("40000")))
	assert.True(t, stats.AverageValue.Equal(dec("20000")))

	require.Len(t, stats.PopularServices, 1)
	assert.Equal(t, 54, stats.PopularServices[0].Quantity, "popularity counts drafts too")
}

func TestSummarize_PopularServicesOrderAndLimit(t *testing.T) {
	var items []QuoteItem
	for i := range 12 {
		name := fmt.Sprintf("Service %02d", i)
		items = append(items, NewQuoteItem(testService(name, CategoryEquipment, "100"), 1+i%3))
	}

	stats := Summarize([]Quotation{testQuotation(items...)})

	require.Len(t, stats.PopularServices, 10)
	assert.Equal(t, "Service 02", stats.PopularServices[0].Name)
	assert.Equal(t, "Service 05", stats.PopularServices[1].Name)
	assert.Equal(t, "Service 08", stats.PopularServices[2].Name)
	assert.Equal(t, "Service 11", stats.PopularServices[3].Name)
	assert.Equal(t, "Service 01", stats.PopularServices[4].Name)

	for i := 1; i < len(stats.PopularServices); i++ {
		assert.GreaterOrEqual(t, stats.PopularServices[i-1].Quantity, stats.PopularServices[i].Quantity)
	}
}
