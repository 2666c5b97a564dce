package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportJSONShape(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rep := Report{
		Entries: []ReportEntry{
			{Group: "1 - Cafe", Quantity: 5, TotalCents: 3500},
		},
		TotalItems:  5,
		TotalCents:  3500,
		Filters:     FilterSet{From: &from, GroupBy: GroupByProduct},
		GeneratedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, float64(5), decoded["total_items"])
	assert.Equal(t, 35.0, decoded["total_amount"])
	assert.Contains(t, decoded, "generated_on")

	entries, ok := decoded["report"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)

	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "1 - Cafe", entry["grupo"])
	assert.Equal(t, float64(5), entry["cantidad"])
	assert.Equal(t, 35.0, entry["ventas"])

	filters := decoded["filters"].(map[string]interface{})
	assert.Equal(t, "2026-03-01", filters["date_from"])
	assert.Equal(t, "product", filters["group_by"])
	assert.NotContains(t, filters, "date_to")
	assert.NotContains(t, filters, "product_id")
}

func TestGroupKeyModes(t *testing.T) {
	r := row(7, "Cafe", strPtr("Bebidas"), 1, centsPtr(700),
		time.Date(2026, 3, 10, 16, 45, 0, 0, time.UTC))

	assert.Equal(t, "7 - Cafe", GroupKey(r, GroupByProduct))
	assert.Equal(t, "Bebidas", GroupKey(r, GroupByCategory))
	assert.Equal(t, "2026-03-10", GroupKey(r, GroupByDate))

	r.Product.Category = nil
	assert.Equal(t, UncategorizedGroup, GroupKey(r, GroupByCategory))
}
