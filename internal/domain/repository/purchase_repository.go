package repository

import (
	"context"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/internal/domain/enum"
	"github.com/dcastano/ventas-api/pkg/pagination"
)

// PurchaseFilterParams contains filtering parameters for purchase listings
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uint
	Status     *enum.PurchaseStatus
}

// PurchaseRepository defines the interface for purchase data operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uint) (*entity.Purchase, error)
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
}
