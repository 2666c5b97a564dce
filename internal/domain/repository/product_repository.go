package repository

import (
	"context"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/pkg/pagination"
)

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// ListAll returns the full catalog ordered by name (for the report form)
	ListAll(ctx context.Context) ([]entity.Product, error)
	// DistinctCategories returns the distinct non-empty category values
	DistinctCategories(ctx context.Context) ([]string, error)
	// AtomicDecrementStock decrements stock only if sufficient quantity exists.
	// Returns (true, nil) if successful, (false, nil) if insufficient stock.
	AtomicDecrementStock(ctx context.Context, id uint, amount int) (bool, error)
}
