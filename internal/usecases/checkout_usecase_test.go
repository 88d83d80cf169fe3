package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/usecases"
)

type checkoutFixture struct {
	cartRepo     *MockCartRepository
	productRepo  *MockProductRepository
	merchantRepo *MockMerchantRepository
	orderRepo    *MockOrderRepository
	uow          *MockUnitOfWork
	uc           *usecases.CheckoutUsecase
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		cartRepo:     new(MockCartRepository),
		productRepo:  new(MockProductRepository),
		merchantRepo: new(MockMerchantRepository),
		orderRepo:    new(MockOrderRepository),
		uow:          new(MockUnitOfWork),
	}
	guard, _ := quietGuard()
	cartUc := usecases.NewCartUsecase(f.cartRepo, f.productRepo, f.merchantRepo, guard)
	f.uc = usecases.NewCheckoutUsecase(cartUc, f.cartRepo, f.orderRepo, f.uow, guard)
	return f
}

// stubCart arranges a one-merchant cart whose view prices to the given lines.
func (f *checkoutFixture) stubCart(tenantID, customerID uuid.UUID, merchant *entities.Merchant, products []*entities.Product, quantities []int) {
	items := make([]*entities.CartItem, len(products))
	for i, p := range products {
		items[i] = &entities.CartItem{
			CustomerID: customerID,
			ProductID:  p.ID,
			Quantity:   quantities[i],
			UnitPrice:  p.Price,
		}
		f.productRepo.On("GetByID", mock.Anything, tenantID, p.ID).Return(p, nil)
		f.merchantRepo.On("GetByID", mock.Anything, tenantID, p.MerchantID).Return(merchant, nil)
	}
	f.cartRepo.On("GetItems", mock.Anything, customerID).Return(items, nil)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	f.cartRepo.On("GetItems", mock.Anything, customerID).Return([]*entities.CartItem{}, nil).Once()

	_, err := f.uc.Checkout(context.Background(), scope, customerID)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	f.orderRepo.AssertNotCalled(t, "Create")
	f.cartRepo.AssertNotCalled(t, "Clear")
}

// The cart snapshot must happen inside the checkout transaction: a read
// taken before it would let an item added in between be cleared without
// ever becoming an order line.
func TestCheckout_SnapshotsCartInsideTransaction(t *testing.T) {
	f := newCheckoutFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	merchantID := uuid.New()
	merchant := &entities.Merchant{ID: merchantID, TenantID: tenantID, Status: entities.MerchantStatusActive}
	product := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: merchantID, Name: "Burger", Price: 30, IsActive: true}

	var txStarted, readInsideTx bool
	f.uow.On("Do", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		txStarted = true
	}).Return(nil).Once()

	items := []*entities.CartItem{{CustomerID: customerID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price}}
	f.cartRepo.On("GetItems", mock.Anything, customerID).Run(func(mock.Arguments) {
		readInsideTx = txStarted
	}).Return(items, nil).Once()
	f.productRepo.On("GetByID", mock.Anything, tenantID, product.ID).Return(product, nil)
	f.merchantRepo.On("GetByID", mock.Anything, tenantID, merchantID).Return(merchant, nil)

	f.orderRepo.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil).Once()
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.cartRepo.On("Clear", mock.Anything, customerID).Return(nil).Once()

	_, err := f.uc.Checkout(context.Background(), scope, customerID)
	require.NoError(t, err)

	require.True(t, txStarted)
	assert.True(t, readInsideTx, "cart read before the transaction began")
}

func TestCheckout_CreatesOrderAndClearsCart(t *testing.T) {
	f := newCheckoutFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	merchantID := uuid.New()
	merchant := &entities.Merchant{ID: merchantID, TenantID: tenantID, TradeName: "Pizzaria Bella", Status: entities.MerchantStatusActive}
	pizza := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: merchantID, Name: "Pizza Margherita", Price: 25.90, DiscountPercent: 15, IsActive: true}
	soda := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: merchantID, Name: "Soda", Price: 6.00, DiscountPercent: 0, IsActive: true}
	// merchant default discount is zero, soda sells at full price
	f.stubCart(tenantID, customerID, merchant, []*entities.Product{pizza, soda}, []int{2, 1})

	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRepo.On("CodeExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	f.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).Return(nil).Once()
	f.cartRepo.On("Clear", mock.Anything, customerID).Return(nil).Once()

	order, err := f.uc.Checkout(context.Background(), scope, customerID)
	require.NoError(t, err)

	assert.Equal(t, tenantID, order.TenantID)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
	assert.Len(t, order.Code, 10)

	// 2 x 25.90 at 15% = 44.03, plus 6.00 undiscounted
	assert.Equal(t, 50.03, order.Total)

	require.Len(t, order.Lines, 2)
	for _, line := range order.Lines {
		assert.Equal(t, entities.LineStatusUnconfirmed, line.Status)
		assert.Equal(t, merchantID, line.MerchantID)
	}
	assert.Equal(t, "Pizza Margherita", order.Lines[0].ProductName)
	assert.Equal(t, 44.03, order.Lines[0].Subtotal)
	assert.Equal(t, 6.00, order.Lines[1].Subtotal)

	f.cartRepo.AssertCalled(t, "Clear", mock.Anything, customerID)
	f.orderRepo.AssertExpectations(t)
}

func TestCheckout_RetriesOnCodeCollision(t *testing.T) {
	f := newCheckoutFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	merchantID := uuid.New()
	merchant := &entities.Merchant{ID: merchantID, TenantID: tenantID, Status: entities.MerchantStatusActive}
	product := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: merchantID, Name: "Burger", Price: 30, IsActive: true}
	f.stubCart(tenantID, customerID, merchant, []*entities.Product{product}, []int{1})

	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRepo.On("CodeExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Once()
	f.orderRepo.On("CodeExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.cartRepo.On("Clear", mock.Anything, customerID).Return(nil).Once()

	order, err := f.uc.Checkout(context.Background(), scope, customerID)
	require.NoError(t, err)
	assert.NotEmpty(t, order.Code)
	f.orderRepo.AssertNumberOfCalls(t, "CodeExists", 2)
}

func TestCheckout_TransactionFailureReturnsError(t *testing.T) {
	f := newCheckoutFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scope := scopeFor(t, customerID, tenantID, entities.PrincipalTypeCustomer)

	merchantID := uuid.New()
	merchant := &entities.Merchant{ID: merchantID, TenantID: tenantID, Status: entities.MerchantStatusActive}
	product := &entities.Product{ID: uuid.New(), TenantID: tenantID, MerchantID: merchantID, Price: 10, IsActive: true}
	f.stubCart(tenantID, customerID, merchant, []*entities.Product{product}, []int{1})

	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRepo.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil).Once()
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := f.uc.Checkout(context.Background(), scope, customerID)
	assert.ErrorIs(t, err, assert.AnError)
	f.cartRepo.AssertNotCalled(t, "Clear")
}

func TestGetByCode_CrossTenantForbidden(t *testing.T) {
	f := newCheckoutFixture()
	scope := scopeFor(t, uuid.New(), uuid.New(), entities.PrincipalTypeMerchant)

	order := &entities.Order{ID: uuid.New(), TenantID: uuid.New(), Code: "ABCDEFGHJK"}
	f.orderRepo.On("GetByCode", mock.Anything, order.Code).Return(order, nil).Once()

	_, err := f.uc.GetByCode(context.Background(), scope, order.Code)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestGetByCode_GlobalSeesAnyTenant(t *testing.T) {
	f := newCheckoutFixture()

	order := &entities.Order{ID: uuid.New(), TenantID: uuid.New(), Code: "ABCDEFGHJK"}
	f.orderRepo.On("GetByCode", mock.Anything, order.Code).Return(order, nil).Once()

	got, err := f.uc.GetByCode(context.Background(), globalScope(t), order.Code)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestGetByCode_UnknownCode(t *testing.T) {
	f := newCheckoutFixture()
	scope := scopeFor(t, uuid.New(), uuid.New(), entities.PrincipalTypeCustomer)

	f.orderRepo.On("GetByCode", mock.Anything, "NOSUCHCODE").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := f.uc.GetByCode(context.Background(), scope, "NOSUCHCODE")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
