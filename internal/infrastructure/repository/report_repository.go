package repository

import (
	"context"
	"fmt"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/internal/domain/report"
	domainRepo "github.com/dcastano/ventas-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// FetchSalesRows loads purchases joined with their products, applying only
// the filters that are present. Absent filters add no predicate at all.
func (r *reportRepository) FetchSalesRows(ctx context.Context, filters report.FilterSet) ([]report.SalesRow, error) {
	var purchases []entity.Purchase

	query := r.db.WithContext(ctx).Model(&entity.Purchase{}).
		InnerJoins("Product")

	if filters.From != nil {
		query = query.Where("purchases.purchased_at >= ?", *filters.From)
	}

	if filters.To != nil {
		query = query.Where("purchases.purchased_at <= ?", *filters.To)
	}

	if filters.ProductID != nil {
		query = query.Where("purchases.product_id = ?", *filters.ProductID)
	}

	if filters.Category != nil {
		query = query.Where(`"Product".category = ?`, *filters.Category)
	}

	if err := query.Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrStorageUnavailable, err)
	}

	rows := make([]report.SalesRow, 0, len(purchases))
	for i := range purchases {
		rows = append(rows, report.SalesRow{
			Purchase: purchases[i],
			Product:  purchases[i].Product,
		})
	}
	return rows, nil
}
