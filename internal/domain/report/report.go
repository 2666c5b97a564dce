// Package report implements the sales reporting pipeline: raw filter
// resolution, aggregation of joined purchase/product rows into grouped
// totals, and ranking of the grouped totals into a final report.
//
// All monetary amounts are integer cents; conversion to a decimal display
// value happens only when a value is marshaled for a response.
package report

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/dcastano/ventas-api/internal/domain/entity"
)

// GroupMode selects the dimension purchases are bucketed by.
type GroupMode string

const (
	GroupByProduct  GroupMode = "product"
	GroupByCategory GroupMode = "category"
	GroupByDate     GroupMode = "date"
)

// UncategorizedGroup is the bucket key for products without a category.
const UncategorizedGroup = "Sin categoría"

// dayFormat is the wire format for date filters and by-date group keys.
const dayFormat = "2006-01-02"

var (
	// ErrInvalidFilter marks a product filter value that is non-empty,
	// not the literal "None", and not an integer.
	ErrInvalidFilter = errors.New("invalid product filter")

	// ErrStorageUnavailable marks a failed read from the purchase store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// FilterSet is the validated set of optional constraints for one report run.
// To, when set, already points at 23:59:59 of the requested end day.
type FilterSet struct {
	From      *time.Time
	To        *time.Time
	ProductID *int
	Category  *string
	GroupBy   GroupMode
}

// MarshalJSON echoes the filters in the same shape they were submitted in,
// so a second stage (the PDF download) can reproduce identical results.
func (f FilterSet) MarshalJSON() ([]byte, error) {
	out := struct {
		DateFrom  string  `json:"date_from,omitempty"`
		DateTo    string  `json:"date_to,omitempty"`
		ProductID *int    `json:"product_id,omitempty"`
		Category  *string `json:"categoria,omitempty"`
		GroupBy   string  `json:"group_by"`
	}{
		ProductID: f.ProductID,
		Category:  f.Category,
		GroupBy:   string(f.GroupBy),
	}
	if f.From != nil {
		out.DateFrom = f.From.Format(dayFormat)
	}
	if f.To != nil {
		out.DateTo = f.To.Format(dayFormat)
	}
	return json.Marshal(out)
}

// SalesRow is one purchase inner-joined to its product.
type SalesRow struct {
	Purchase entity.Purchase
	Product  entity.Product
}

// ReportEntry is one grouped total in a report.
type ReportEntry struct {
	Group      string `json:"grupo"`
	Quantity   int    `json:"cantidad"`
	TotalCents int64  `json:"-"`
}

// MarshalJSON converts the cents total to a decimal for API responses
func (e ReportEntry) MarshalJSON() ([]byte, error) {
	type Alias ReportEntry
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"ventas"`
	}{
		Alias: Alias(e),
		Total: float64(e.TotalCents) / 100,
	})
}

// Report is the ordered, summarized output of one pipeline run.
type Report struct {
	Entries     []ReportEntry `json:"report"`
	TotalItems  int           `json:"total_items"`
	TotalCents  int64         `json:"-"`
	Filters     FilterSet     `json:"filters"`
	GeneratedAt time.Time     `json:"generated_on"`
}

// MarshalJSON converts the grand total to a decimal for API responses
func (r Report) MarshalJSON() ([]byte, error) {
	type Alias Report
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(r),
		TotalAmount: float64(r.TotalCents) / 100,
	})
}

// GroupKey derives the bucket key for a row under the given mode.
func GroupKey(row SalesRow, mode GroupMode) string {
	switch mode {
	case GroupByCategory:
		if row.Product.Category != nil && *row.Product.Category != "" {
			return *row.Product.Category
		}
		return UncategorizedGroup
	case GroupByDate:
		return row.Purchase.PurchasedAt.Format(dayFormat)
	default:
		// Composite key so same-named products never collide.
		return strconv.FormatUint(uint64(row.Product.ID), 10) + " - " + row.Product.Name
	}
}
