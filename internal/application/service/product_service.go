package service

import (
	"context"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/internal/domain/repository"
	"github.com/dcastano/ventas-api/pkg/apperror"
	"github.com/dcastano/ventas-api/pkg/pagination"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the product creation input
type CreateProductInput struct {
	Name     string
	Price    float64
	Stock    int
	ImageURL string
	Category string
}

// CreateProduct adds a product to the catalog
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:  input.Name,
		Stock: input.Stock,
	}
	product.SetPriceFromDecimal(input.Price)

	if input.ImageURL != "" {
		product.ImageURL = &input.ImageURL
	}
	if input.Category != "" {
		product.Category = &input.Category
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct returns a single product by id
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the product update input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name     *string
	Price    *float64
	Stock    *int
	ImageURL *string
	Category *string
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.Category != nil {
		product.Category = input.Category
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts returns a filtered, paginated slice of the catalog
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, paging), nil
}
