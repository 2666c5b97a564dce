package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFiltersEmpty(t *testing.T) {
	filters, err := ResolveFilters(RawFilters{})
	require.NoError(t, err)

	assert.Nil(t, filters.From)
	assert.Nil(t, filters.To)
	assert.Nil(t, filters.ProductID)
	assert.Nil(t, filters.Category)
	assert.Equal(t, GroupByProduct, filters.GroupBy)
}

func TestResolveFiltersDates(t *testing.T) {
	filters, err := ResolveFilters(RawFilters{
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31",
	})
	require.NoError(t, err)

	require.NotNil(t, filters.From)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *filters.From)

	// The end date must cover the whole end day
	require.NotNil(t, filters.To)
	assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC), *filters.To)
}

func TestResolveFiltersMalformedDatesAreIgnored(t *testing.T) {
	for _, input := range []string{"31/01/2026", "not-a-date", "2026-13-45", "2026-01"} {
		filters, err := ResolveFilters(RawFilters{DateFrom: input, DateTo: input})
		require.NoError(t, err, "input %q", input)
		assert.Nil(t, filters.From, "input %q", input)
		assert.Nil(t, filters.To, "input %q", input)
	}
}

func TestResolveFiltersProductID(t *testing.T) {
	filters, err := ResolveFilters(RawFilters{ProductID: "42"})
	require.NoError(t, err)
	require.NotNil(t, filters.ProductID)
	assert.Equal(t, 42, *filters.ProductID)
}

func TestResolveFiltersProductIDNegativeMatchesNothing(t *testing.T) {
	// Any integer is a valid filter; ids no product carries just select
	// zero rows downstream
	filters, err := ResolveFilters(RawFilters{ProductID: "-3"})
	require.NoError(t, err)
	require.NotNil(t, filters.ProductID)
	assert.Equal(t, -3, *filters.ProductID)
}

func TestResolveFiltersProductIDAbsentValues(t *testing.T) {
	for _, input := range []string{"", "None"} {
		filters, err := ResolveFilters(RawFilters{ProductID: input})
		require.NoError(t, err, "input %q", input)
		assert.Nil(t, filters.ProductID, "input %q", input)
	}
}

func TestResolveFiltersProductIDInvalid(t *testing.T) {
	for _, input := range []string{"abc", "12.5", "1e3"} {
		_, err := ResolveFilters(RawFilters{ProductID: input})
		assert.ErrorIs(t, err, ErrInvalidFilter, "input %q", input)
	}
}

func TestResolveFiltersCategory(t *testing.T) {
	filters, err := ResolveFilters(RawFilters{Category: "Bebidas"})
	require.NoError(t, err)
	require.NotNil(t, filters.Category)
	assert.Equal(t, "Bebidas", *filters.Category)
}

func TestResolveFiltersGroupBy(t *testing.T) {
	cases := map[string]GroupMode{
		"product":  GroupByProduct,
		"category": GroupByCategory,
		"date":     GroupByDate,
		"":         GroupByProduct,
		"bogus":    GroupByProduct,
	}
	for input, want := range cases {
		filters, err := ResolveFilters(RawFilters{GroupBy: input})
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, filters.GroupBy, "input %q", input)
	}
}
