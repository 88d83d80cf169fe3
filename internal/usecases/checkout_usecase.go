package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/domain/repositories"
	"discount-club.backend/pkg/utils"
)

// codeGenerationAttempts bounds the collision-check loop for redemption
// codes. With a 31-char alphabet and 10 positions a collision is already
// vanishingly rare; the bound turns a broken RNG into an error instead of a
// busy loop.
const codeGenerationAttempts = 5

// CheckoutUsecase converts a customer's cart into a persisted order with
// frozen line items and a unique redemption code.
type CheckoutUsecase struct {
	cartUsecase *CartUsecase
	cartRepo    repositories.CartRepository
	orderRepo   repositories.OrderRepository
	uow         repositories.UnitOfWork
	guard       *Guard
}

// NewCheckoutUsecase creates a new checkout usecase
func NewCheckoutUsecase(
	cartUsecase *CartUsecase,
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	uow repositories.UnitOfWork,
	guard *Guard,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartUsecase: cartUsecase,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		uow:         uow,
		guard:       guard,
	}
}

// Checkout snapshots the customer's cart into an order. The cart read, the
// order insert and the cart clearing all share one transaction; an empty
// cart fails without writes. The order total is the sum of the discounted
// line subtotals.
func (u *CheckoutUsecase) Checkout(ctx context.Context, scope Scope, customerID uuid.UUID) (*entities.Order, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, err
	}

	var order *entities.Order
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		// Reading the cart inside the transaction keeps the snapshot and
		// the Clear below consistent: an item added concurrently is either
		// part of the order or survives the clear, never silently dropped.
		view, err := u.cartUsecase.View(txCtx, scope, customerID)
		if err != nil {
			return err
		}
		if len(view.Items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		order = &entities.Order{
			TenantID:   tenantID,
			CustomerID: customerID,
			Total:      view.Subtotal,
			Status:     entities.OrderStatusPending,
		}
		for _, line := range view.Items {
			order.Lines = append(order.Lines, entities.OrderLine{
				ProductID:   line.ProductID,
				MerchantID:  line.MerchantID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				Subtotal:    line.Subtotal,
				Status:      entities.LineStatusUnconfirmed,
			})
		}

		code, err := u.generateCode(txCtx)
		if err != nil {
			return err
		}
		order.Code = code

		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		return u.cartRepo.Clear(txCtx, customerID)
	})
	if err != nil {
		return nil, err
	}

	u.guard.Audit(ctx, scope, "order.checkout", map[string]interface{}{
		"customer_id": customerID,
		"order_id":    order.ID,
		"code":        order.Code,
		"total":       order.Total,
	})
	return order, nil
}

// GetByCode resolves an order purely from its redemption code, then
// re-derives authorization from the resolved tenant: non-global scopes may
// only see orders of their own tenant.
func (u *CheckoutUsecase) GetByCode(ctx context.Context, scope Scope, code string) (*entities.Order, error) {
	order, err := u.orderRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !scope.IsGlobal() {
		tenantID, err := scope.Tenant()
		if err != nil {
			return nil, err
		}
		if order.TenantID != tenantID {
			return nil, domainerrors.ErrForbidden
		}
	}
	return order, nil
}

// ListByCustomer lists a customer's orders with pagination
func (u *CheckoutUsecase) ListByCustomer(ctx context.Context, scope Scope, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, 0, err
	}
	return u.orderRepo.ListByCustomer(ctx, tenantID, customerID, limit, offset)
}

func (u *CheckoutUsecase) generateCode(ctx context.Context) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code, err := utils.GenerateRedemptionCode()
		if err != nil {
			return "", err
		}
		exists, err := u.orderRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique redemption code after %d attempts", codeGenerationAttempts)
}
