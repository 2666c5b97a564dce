package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/internal/domain/repository"
	"github.com/dcastano/ventas-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurchaseRepo struct {
	created []*entity.Purchase
}

func (f *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchase.ID = uint(len(f.created) + 1)
	f.created = append(f.created, purchase)
	return nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id uint) (*entity.Purchase, error) {
	return nil, nil
}

func (f *fakePurchaseRepo) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range f.created {
		if params.UserID != nil && p.UserID != *params.UserID {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeCatalogRepo struct {
	fakeProductRepoForReports
	product *entity.Product
	stockOK bool
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	if f.product != nil && f.product.ID == id {
		return f.product, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepo) AtomicDecrementStock(ctx context.Context, id uint, amount int) (bool, error) {
	return f.stockOK, nil
}

func TestCheckoutSnapshotsTotal(t *testing.T) {
	purchaseRepo := &fakePurchaseRepo{}
	productRepo := &fakeCatalogRepo{
		product: &entity.Product{ID: 1, Name: "Cafe", PriceCents: 700, Stock: 10},
		stockOK: true,
	}
	svc := NewPurchaseService(purchaseRepo, productRepo)

	purchase, err := svc.Checkout(context.Background(), 5, &CheckoutInput{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, uint(5), purchase.UserID)
	assert.Equal(t, 3, purchase.Quantity)
	require.NotNil(t, purchase.TotalCents)
	assert.Equal(t, int64(2100), *purchase.TotalCents)
	assert.False(t, purchase.PurchasedAt.IsZero())
}

func TestCheckoutUnknownProduct(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseRepo{}, &fakeCatalogRepo{stockOK: true})

	_, err := svc.Checkout(context.Background(), 5, &CheckoutInput{ProductID: 99, Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	productRepo := &fakeCatalogRepo{
		product: &entity.Product{ID: 1, Name: "Cafe", PriceCents: 700, Stock: 1},
		stockOK: false,
	}
	svc := NewPurchaseService(&fakePurchaseRepo{}, productRepo)

	_, err := svc.Checkout(context.Background(), 5, &CheckoutInput{ProductID: 1, Quantity: 3})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseRepo{}, &fakeCatalogRepo{})

	_, err := svc.Checkout(context.Background(), 5, &CheckoutInput{ProductID: 1, Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestListMineFiltersByUser(t *testing.T) {
	purchaseRepo := &fakePurchaseRepo{}
	productRepo := &fakeCatalogRepo{
		product: &entity.Product{ID: 1, Name: "Cafe", PriceCents: 700, Stock: 10},
		stockOK: true,
	}
	svc := NewPurchaseService(purchaseRepo, productRepo)

	_, err := svc.Checkout(context.Background(), 5, &CheckoutInput{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Checkout(context.Background(), 6, &CheckoutInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	result, err := svc.ListMine(context.Background(), 5, nil)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, uint(5), result.Items[0].UserID)
}
