package report

import (
	"testing"
	"time"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func centsPtr(c int64) *int64 { return &c }

func row(productID uint, name string, category *string, quantity int, totalCents *int64, purchasedAt time.Time) SalesRow {
	return SalesRow{
		Purchase: entity.Purchase{
			ProductID:   productID,
			Quantity:    quantity,
			TotalCents:  totalCents,
			PurchasedAt: purchasedAt,
		},
		Product: entity.Product{
			ID:       productID,
			Name:     name,
			Category: category,
		},
	}
}

func TestAggregateSingleProduct(t *testing.T) {
	day := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	rows := []SalesRow{
		row(1, "Cafe", strPtr("Bebidas"), 2, centsPtr(1400), day),
		row(1, "Cafe", strPtr("Bebidas"), 3, centsPtr(2100), day),
	}

	buckets, totalCents, totalItems := Aggregate(rows, GroupByProduct)
	entries := Rank(buckets)

	require.Len(t, entries, 1)
	assert.Equal(t, "1 - Cafe", entries[0].Group)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, int64(3500), entries[0].TotalCents)
	assert.Equal(t, int64(3500), totalCents)
	assert.Equal(t, 5, totalItems)
}

func TestAggregateByProductSameNameDistinctIDs(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []SalesRow{
		row(1, "Cafe", nil, 1, centsPtr(700), day),
		row(2, "Cafe", nil, 1, centsPtr(900), day),
	}

	buckets, _, _ := Aggregate(rows, GroupByProduct)
	entries := Rank(buckets)

	require.Len(t, entries, 2)
	assert.Equal(t, "2 - Cafe", entries[0].Group)
	assert.Equal(t, "1 - Cafe", entries[1].Group)
}

func TestAggregateByCategoryMergesUncategorized(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []SalesRow{
		row(1, "Cafe", strPtr("Bebidas"), 1, centsPtr(700), day),
		row(2, "Cuaderno", nil, 2, centsPtr(500), day),
		row(3, "Lapiz", strPtr(""), 3, centsPtr(300), day),
	}

	buckets, totalCents, totalItems := Aggregate(rows, GroupByCategory)
	entries := Rank(buckets)

	require.Len(t, entries, 2)

	byGroup := map[string]ReportEntry{}
	for _, e := range entries {
		byGroup[e.Group] = e
	}

	// Products without a category share one bucket
	uncategorized, ok := byGroup[UncategorizedGroup]
	require.True(t, ok)
	assert.Equal(t, 5, uncategorized.Quantity)
	assert.Equal(t, int64(800), uncategorized.TotalCents)

	assert.Equal(t, int64(700), byGroup["Bebidas"].TotalCents)
	assert.Equal(t, int64(1500), totalCents)
	assert.Equal(t, 6, totalItems)
}

func TestAggregateByDate(t *testing.T) {
	rows := []SalesRow{
		row(1, "Cafe", nil, 1, centsPtr(700), time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)),
		row(1, "Cafe", nil, 1, centsPtr(700), time.Date(2026, 3, 10, 21, 15, 0, 0, time.UTC)),
		row(1, "Cafe", nil, 1, centsPtr(700), time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)),
	}

	buckets, _, _ := Aggregate(rows, GroupByDate)
	entries := Rank(buckets)

	require.Len(t, entries, 2)
	assert.Equal(t, "2026-03-10", entries[0].Group)
	assert.Equal(t, int64(1400), entries[0].TotalCents)
	assert.Equal(t, "2026-03-11", entries[1].Group)
}

func TestAggregateNilTotalCountsAsZero(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []SalesRow{
		row(1, "Cafe", nil, 2, nil, day),
		row(1, "Cafe", nil, 1, centsPtr(700), day),
	}

	buckets, totalCents, totalItems := Aggregate(rows, GroupByProduct)
	entries := Rank(buckets)

	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Quantity)
	assert.Equal(t, int64(700), entries[0].TotalCents)
	assert.Equal(t, int64(700), totalCents)
	assert.Equal(t, 3, totalItems)
}

func TestAggregateGrandTotalsIndependentOfMode(t *testing.T) {
	rows := []SalesRow{
		row(1, "Cafe", strPtr("Bebidas"), 2, centsPtr(1400), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		row(2, "Cuaderno", nil, 1, centsPtr(500), time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)),
		row(3, "Lapiz", strPtr("Utiles"), 4, nil, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)),
	}

	for _, mode := range []GroupMode{GroupByProduct, GroupByCategory, GroupByDate} {
		_, totalCents, totalItems := Aggregate(rows, mode)
		assert.Equal(t, int64(1900), totalCents, "mode %s", mode)
		assert.Equal(t, 7, totalItems, "mode %s", mode)
	}
}

func TestRankOrdersByTotalDescending(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []SalesRow{
		row(1, "Cafe", nil, 1, centsPtr(500), day),
		row(2, "Te", nil, 1, centsPtr(900), day),
		row(3, "Mate", nil, 1, centsPtr(700), day),
	}

	buckets, _, _ := Aggregate(rows, GroupByProduct)
	entries := Rank(buckets)

	require.Len(t, entries, 3)
	assert.Equal(t, "2 - Te", entries[0].Group)
	assert.Equal(t, "3 - Mate", entries[1].Group)
	assert.Equal(t, "1 - Cafe", entries[2].Group)
}

func TestRankTiesKeepFirstSeenOrder(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []SalesRow{
		row(1, "Cafe", nil, 1, centsPtr(700), day),
		row(2, "Te", nil, 1, centsPtr(700), day),
		row(3, "Mate", nil, 1, centsPtr(700), day),
	}

	buckets, _, _ := Aggregate(rows, GroupByProduct)

	// Repeated ranking over the same buckets is deterministic
	for i := 0; i < 5; i++ {
		entries := Rank(buckets)
		require.Len(t, entries, 3)
		assert.Equal(t, "1 - Cafe", entries[0].Group)
		assert.Equal(t, "2 - Te", entries[1].Group)
		assert.Equal(t, "3 - Mate", entries[2].Group)
	}
}

func TestRankDoesNotMutateBuckets(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []SalesRow{
		row(1, "Cafe", nil, 1, centsPtr(100), day),
		row(2, "Te", nil, 1, centsPtr(900), day),
	}

	buckets, _, _ := Aggregate(rows, GroupByProduct)
	first := Rank(buckets)
	second := Rank(buckets)

	assert.Equal(t, first, second)
}

func TestAggregateEmptyRows(t *testing.T) {
	buckets, totalCents, totalItems := Aggregate(nil, GroupByProduct)
	entries := Rank(buckets)

	assert.Empty(t, entries)
	assert.Zero(t, totalCents)
	assert.Zero(t, totalItems)
}
