package report

import (
	"fmt"
	"strconv"
	"time"
)

// RawFilters carries the user-supplied filter inputs exactly as submitted.
type RawFilters struct {
	DateFrom  string `form:"date_from" json:"date_from"`
	DateTo    string `form:"date_to" json:"date_to"`
	ProductID string `form:"product_id" json:"product_id"`
	Category  string `form:"categoria" json:"categoria"`
	GroupBy   string `form:"group_by" json:"group_by"`
}

// ResolveFilters validates raw filter inputs into a FilterSet.
//
// Date strings must be YYYY-MM-DD; a malformed or empty date resolves to
// "no constraint" rather than an error. That leniency is deliberate and
// load-bearing: the report form submits empty strings for untouched fields.
// The end date, when present, is widened to 23:59:59 so the range includes
// the whole end day.
//
// A product id of "", "None" resolves to absent; any other non-numeric
// value returns ErrInvalidFilter. Any integer is accepted; an id that no
// product carries simply matches no rows. An unknown group_by falls back
// to grouping by product.
func ResolveFilters(raw RawFilters) (FilterSet, error) {
	filters := FilterSet{
		From:    parseDay(raw.DateFrom),
		GroupBy: resolveGroupMode(raw.GroupBy),
	}

	if to := parseDay(raw.DateTo); to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())
		filters.To = &end
	}

	if raw.ProductID != "" && raw.ProductID != "None" {
		id, err := strconv.Atoi(raw.ProductID)
		if err != nil {
			return FilterSet{}, fmt.Errorf("%w: product_id %q", ErrInvalidFilter, raw.ProductID)
		}
		filters.ProductID = &id
	}

	if raw.Category != "" {
		category := raw.Category
		filters.Category = &category
	}

	return filters, nil
}

// parseDay parses a YYYY-MM-DD string, returning nil for anything else.
func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

func resolveGroupMode(s string) GroupMode {
	switch GroupMode(s) {
	case GroupByCategory:
		return GroupByCategory
	case GroupByDate:
		return GroupByDate
	default:
		return GroupByProduct
	}
}
