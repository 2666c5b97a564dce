package service

import (
	"context"
	"time"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/internal/domain/enum"
	"github.com/dcastano/ventas-api/internal/domain/repository"
	"github.com/dcastano/ventas-api/pkg/apperror"
	"github.com/dcastano/ventas-api/pkg/pagination"
)

// PurchaseService handles checkout and purchase history
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, productRepo repository.ProductRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
	}
}

// CheckoutInput represents a checkout request for one product
type CheckoutInput struct {
	ProductID uint
	Quantity  int
}

// Checkout records a purchase, decrementing stock atomically. The total is
// snapshotted from the product price at checkout time so later price edits
// never rewrite history.
func (s *PurchaseService) Checkout(ctx context.Context, userID uint, input *CheckoutInput) (*entity.Purchase, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	ok, err := s.productRepo.AtomicDecrementStock(ctx, product.ID, input.Quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewConflictError("Insufficient stock")
	}

	total := product.PriceCents * int64(input.Quantity)
	purchase := &entity.Purchase{
		UserID:      userID,
		ProductID:   product.ID,
		Quantity:    input.Quantity,
		TotalCents:  &total,
		Status:      enum.PurchaseStatusPending,
		PurchasedAt: time.Now().UTC(),
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	purchase.Product = *product
	return purchase, nil
}

// ListMine returns the authenticated user's purchase history
func (s *PurchaseService) ListMine(ctx context.Context, userID uint, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	filter := &repository.PurchaseFilterParams{
		Pagination: params,
		UserID:     &userID,
	}

	purchases, total, err := s.purchaseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(purchases, paging), nil
}

// ListAll returns every purchase, optionally filtered by status (admin view)
func (s *PurchaseService) ListAll(ctx context.Context, params *pagination.PaginationParams, status *enum.PurchaseStatus) (*pagination.PaginatedResult[entity.Purchase], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	filter := &repository.PurchaseFilterParams{
		Pagination: params,
		Status:     status,
	}

	purchases, total, err := s.purchaseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(purchases, paging), nil
}
