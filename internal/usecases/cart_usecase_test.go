package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/usecases"
)

type cartFixture struct {
	cartRepo     *MockCartRepository
	productRepo  *MockProductRepository
	merchantRepo *MockMerchantRepository
	uc           *usecases.CartUsecase
}

func newCartFixture() *cartFixture {
	f := &cartFixture{
		cartRepo:     new(MockCartRepository),
		productRepo:  new(MockProductRepository),
		merchantRepo: new(MockMerchantRepository),
	}
	guard, _ := quietGuard()
	f.uc = usecases.NewCartUsecase(f.cartRepo, f.productRepo, f.merchantRepo, guard)
	return f
}

func TestCartAddItem_NewItem(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	product := &entities.Product{
		ID:         uuid.New(),
		TenantID:   tenantID,
		MerchantID: uuid.New(),
		Name:       "Pizza",
		Price:      25.90,
		IsActive:   true,
	}

	f.productRepo.On("GetActiveByID", mock.Anything, tenantID, product.ID).Return(product, nil).Once()
	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{}, nil).Once()
	f.cartRepo.On("GetItem", mock.Anything, customerID, product.ID).Return(nil, domainerrors.ErrNotFound).Once()
	f.cartRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item *entities.CartItem) bool {
		return item.CustomerID == customerID &&
			item.ProductID == product.ID &&
			item.Quantity == 2 &&
			item.UnitPrice == 25.90
	})).Return(nil).Once()

	err := f.uc.AddItem(context.Background(), scope, customerID, product.ID, 2)
	assert.NoError(t, err)
	f.cartRepo.AssertExpectations(t)
}

func TestCartAddItem_AccumulatesAndRefreshesPrice(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	merchantID := uuid.New()
	product := &entities.Product{
		ID:         uuid.New(),
		TenantID:   tenantID,
		MerchantID: merchantID,
		Price:      12.50, // price changed since the item was added
		IsActive:   true,
	}
	existing := &entities.CartItem{
		CustomerID: customerID,
		ProductID:  product.ID,
		Quantity:   1,
		UnitPrice:  10.00,
	}

	f.productRepo.On("GetActiveByID", mock.Anything, tenantID, product.ID).Return(product, nil).Once()
	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{existing}, nil).Once()
	f.productRepo.On("GetByID", mock.Anything, tenantID, product.ID).Return(product, nil).Once()
	f.cartRepo.On("GetItem", mock.Anything, customerID, product.ID).Return(existing, nil).Once()
	f.cartRepo.On("Update", mock.Anything, mock.MatchedBy(func(item *entities.CartItem) bool {
		return item.Quantity == 4 && item.UnitPrice == 12.50
	})).Return(nil).Once()

	err := f.uc.AddItem(context.Background(), scope, customerID, product.ID, 3)
	assert.NoError(t, err)
	f.cartRepo.AssertExpectations(t)
}

func TestCartAddItem_QuantityBelowOne(t *testing.T) {
	f := newCartFixture()
	scope := scopeFor(t, uuid.New(), uuid.New(), entities.PrincipalTypeCustomer)

	err := f.uc.AddItem(context.Background(), scope, uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCartAddItem_SecondMerchantConflicts(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	heldMerchantID := uuid.New()
	heldProduct := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: heldMerchantID}
	heldMerchant := &entities.Merchant{ID: heldMerchantID, TenantID: tenantID, TradeName: "Pizzaria Bella", Status: entities.MerchantStatusActive}

	incoming := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: uuid.New(), Price: 9.90, IsActive: true}

	f.productRepo.On("GetActiveByID", mock.Anything, tenantID, incoming.ID).Return(incoming, nil).Once()
	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{
		{CustomerID: customerID, ProductID: heldProduct.ID, Quantity: 1, UnitPrice: 25.90},
	}, nil).Once()
	f.productRepo.On("GetByID", mock.Anything, tenantID, heldProduct.ID).Return(heldProduct, nil).Once()
	f.merchantRepo.On("GetByID", mock.Anything, tenantID, heldMerchantID).Return(heldMerchant, nil).Once()

	err := f.uc.AddItem(context.Background(), scope, customerID, incoming.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrMerchantConflict)

	var conflict *domainerrors.MerchantConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Pizzaria Bella", conflict.MerchantName)
	f.cartRepo.AssertNotCalled(t, "Insert")
}

func TestCartAddItem_ConflictNamesDeactivatedMerchantByID(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	// The merchant holding the cart was deleted since; its items still block.
	heldMerchantID := uuid.New()
	heldProduct := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: heldMerchantID}
	incoming := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: uuid.New(), Price: 5, IsActive: true}

	f.productRepo.On("GetActiveByID", mock.Anything, tenantID, incoming.ID).Return(incoming, nil).Once()
	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{
		{CustomerID: customerID, ProductID: heldProduct.ID, Quantity: 1, UnitPrice: 10},
	}, nil).Once()
	f.productRepo.On("GetByID", mock.Anything, tenantID, heldProduct.ID).Return(heldProduct, nil).Once()
	f.merchantRepo.On("GetByID", mock.Anything, tenantID, heldMerchantID).Return(nil, domainerrors.ErrNotFound).Once()

	err := f.uc.AddItem(context.Background(), scope, customerID, incoming.ID, 1)

	var conflict *domainerrors.MerchantConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, heldMerchantID.String(), conflict.MerchantName)
}

func TestCartAddItem_ClearThenRetrySucceeds(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	incoming := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: uuid.New(), Price: 9.90, IsActive: true}

	f.cartRepo.On("Clear", mock.Anything, customerID).Return(nil).Once()
	f.productRepo.On("GetActiveByID", mock.Anything, tenantID, incoming.ID).Return(incoming, nil).Once()
	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{}, nil).Once()
	f.cartRepo.On("GetItem", mock.Anything, customerID, incoming.ID).Return(nil, domainerrors.ErrNotFound).Once()
	f.cartRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.uc.Clear(context.Background(), scope, customerID))
	assert.NoError(t, f.uc.AddItem(context.Background(), scope, customerID, incoming.ID, 1))
	f.cartRepo.AssertExpectations(t)
}

func TestCartUpdateQuantity_BelowOneRemovesItem(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	f.cartRepo.On("Delete", mock.Anything, customerID, productID).Return(nil).Once()

	err := f.uc.UpdateQuantity(context.Background(), scope, customerID, productID, 0)
	assert.NoError(t, err)
	f.cartRepo.AssertExpectations(t)
	f.cartRepo.AssertNotCalled(t, "Update")
}

func TestCartView_DiscountPricing(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	merchantID := uuid.New()
	merchant := &entities.Merchant{
		ID:                     merchantID,
		TenantID:               tenantID,
		TradeName:              "Pizzaria Bella",
		DefaultDiscountPercent: 10,
		Status:                 entities.MerchantStatusActive,
	}
	product := &entities.Product{
		ID:              uuid.New(),
		TenantID:        tenantID,
		MerchantID:      merchantID,
		Name:            "Pizza Margherita",
		Price:           25.90,
		DiscountPercent: 15,
		IsActive:        true,
	}

	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{
		{CustomerID: customerID, ProductID: product.ID, Quantity: 2, UnitPrice: 25.90},
	}, nil).Once()
	f.productRepo.On("GetByID", mock.Anything, tenantID, product.ID).Return(product, nil).Once()
	f.merchantRepo.On("GetByID", mock.Anything, tenantID, merchantID).Return(merchant, nil).Once()

	view, err := f.uc.View(context.Background(), scope, customerID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	line := view.Items[0]
	assert.Equal(t, "Pizzaria Bella", line.MerchantName)
	assert.Equal(t, 15.0, line.DiscountPercent)
	assert.Equal(t, 51.80, line.SubtotalOriginal)
	assert.Equal(t, 44.03, line.Subtotal)
	assert.Equal(t, 7.77, line.Savings)

	assert.Equal(t, 51.80, view.SubtotalOriginal)
	assert.Equal(t, 44.03, view.Subtotal)
	assert.Equal(t, 7.77, view.Savings)
}

func TestCartView_FallsBackToMerchantDefaultDiscount(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	merchantID := uuid.New()
	merchant := &entities.Merchant{ID: merchantID, TenantID: tenantID, TradeName: "Cafe Central", DefaultDiscountPercent: 20}
	product := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: merchantID, Name: "Espresso", Price: 10, IsActive: true}

	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{
		{CustomerID: customerID, ProductID: product.ID, Quantity: 1, UnitPrice: 10},
	}, nil).Once()
	f.productRepo.On("GetByID", mock.Anything, tenantID, product.ID).Return(product, nil).Once()
	f.merchantRepo.On("GetByID", mock.Anything, tenantID, merchantID).Return(merchant, nil).Once()

	view, err := f.uc.View(context.Background(), scope, customerID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 20.0, view.Items[0].DiscountPercent)
	assert.Equal(t, 8.0, view.Items[0].Subtotal)
}

func TestCartView_MissingMerchantTolerated(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	product := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: uuid.New(), Name: "Burger", Price: 30, DiscountPercent: 10, IsActive: true}

	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{
		{CustomerID: customerID, ProductID: product.ID, Quantity: 1, UnitPrice: 30},
	}, nil).Once()
	f.productRepo.On("GetByID", mock.Anything, tenantID, product.ID).Return(product, nil).Once()
	f.merchantRepo.On("GetByID", mock.Anything, tenantID, product.MerchantID).Return(nil, domainerrors.ErrNotFound).Once()

	view, err := f.uc.View(context.Background(), scope, customerID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Empty(t, view.Items[0].MerchantName)
	assert.Equal(t, 27.0, view.Items[0].Subtotal)
}

func TestCartView_EmptyCart(t *testing.T) {
	f := newCartFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{}, nil).Once()

	view, err := f.uc.View(context.Background(), scope, customerID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Subtotal)
}
