package repository

import (
	"context"

	"github.com/dcastano/ventas-api/internal/domain/report"
)

// ReportRepository defines the read interface the reporting pipeline draws
// from. Implementations apply only the filters present in the set,
// conjunctively, and impose no ordering; ordering belongs to the ranker.
type ReportRepository interface {
	// FetchSalesRows returns every purchase inner-joined to its product
	// that satisfies all active filters. A failed read is reported as
	// report.ErrStorageUnavailable; no retry is attempted here.
	FetchSalesRows(ctx context.Context, filters report.FilterSet) ([]report.SalesRow, error)
}
