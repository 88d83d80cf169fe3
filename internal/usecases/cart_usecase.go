package usecases

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/domain/repositories"
)

// CartUsecase maintains the single active cart of a customer and enforces
// the merchant-lock invariant: a non-empty cart only holds products of one
// merchant.
type CartUsecase struct {
	cartRepo     repositories.CartRepository
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
	guard        *Guard
}

// NewCartUsecase creates a new cart usecase
func NewCartUsecase(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	merchantRepo repositories.MerchantRepository,
	guard *Guard,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		guard:        guard,
	}
}

// AddItem puts qty units of a product into the customer's cart. Adding a
// product of a second merchant fails with MerchantConflict; the caller must
// Clear first, there is no implicit merge. Re-adding an existing product
// accumulates quantity and refreshes the captured unit price.
func (u *CartUsecase) AddItem(ctx context.Context, scope Scope, customerID, productID uuid.UUID, qty int) error {
	if qty < 1 {
		return domainerrors.ErrInvalidInput
	}

	tenantID, err := scope.Tenant()
	if err != nil {
		return err
	}

	product, err := u.productRepo.GetActiveByID(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	if err := u.checkMerchantLock(ctx, tenantID, customerID, product.MerchantID); err != nil {
		return err
	}

	existing, err := u.cartRepo.GetItem(ctx, customerID, productID)
	switch {
	case err == nil:
		existing.Quantity += qty
		existing.UnitPrice = product.Price
		if err := u.cartRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, domainerrors.ErrNotFound):
		item := &entities.CartItem{
			TenantID:   tenantID,
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   qty,
			UnitPrice:  product.Price,
		}
		if err := u.cartRepo.Insert(ctx, item); err != nil {
			return err
		}
	default:
		return err
	}

	u.guard.Audit(ctx, scope, "cart.add_item", map[string]interface{}{
		"customer_id": customerID,
		"product_id":  productID,
		"quantity":    qty,
	})
	return nil
}

// UpdateQuantity overwrites the stored quantity of a cart item. A quantity
// below one removes the item.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, scope Scope, customerID, productID uuid.UUID, qty int) error {
	if qty < 1 {
		return u.RemoveItem(ctx, scope, customerID, productID)
	}

	tenantID, err := scope.Tenant()
	if err != nil {
		return err
	}

	item, err := u.cartRepo.GetItem(ctx, customerID, productID)
	if err != nil {
		return err
	}

	product, err := u.productRepo.GetActiveByID(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	item.Quantity = qty
	item.UnitPrice = product.Price
	if err := u.cartRepo.Update(ctx, item); err != nil {
		return err
	}

	u.guard.Audit(ctx, scope, "cart.update_quantity", map[string]interface{}{
		"customer_id": customerID,
		"product_id":  productID,
		"quantity":    qty,
	})
	return nil
}

// RemoveItem deletes one product from the customer's cart
func (u *CartUsecase) RemoveItem(ctx context.Context, scope Scope, customerID, productID uuid.UUID) error {
	if _, err := scope.Tenant(); err != nil {
		return err
	}

	if err := u.cartRepo.Delete(ctx, customerID, productID); err != nil {
		return err
	}

	u.guard.Audit(ctx, scope, "cart.remove_item", map[string]interface{}{
		"customer_id": customerID,
		"product_id":  productID,
	})
	return nil
}

// Clear deletes all items of the customer's cart
func (u *CartUsecase) Clear(ctx context.Context, scope Scope, customerID uuid.UUID) error {
	if _, err := scope.Tenant(); err != nil {
		return err
	}

	if err := u.cartRepo.Clear(ctx, customerID); err != nil {
		return err
	}

	u.guard.Audit(ctx, scope, "cart.clear", map[string]interface{}{
		"customer_id": customerID,
	})
	return nil
}

// View returns the cart joined with live product and merchant data,
// annotated with discount-aware pricing per line and in aggregate.
func (u *CartUsecase) View(ctx context.Context, scope Scope, customerID uuid.UUID) (*entities.CartView, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, err
	}

	items, err := u.cartRepo.GetItems(ctx, customerID)
	if err != nil {
		return nil, err
	}

	view := &entities.CartView{CustomerID: customerID, Items: []entities.CartLine{}}
	for _, item := range items {
		product, err := u.productRepo.GetByID(ctx, tenantID, item.ProductID)
		if err != nil {
			return nil, err
		}
		merchant, err := u.merchantRepo.GetByID(ctx, tenantID, product.MerchantID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}

		discount := product.EffectiveDiscount(merchant)
		original := roundCents(float64(item.Quantity) * item.UnitPrice)
		discounted := roundCents(original * (1 - discount/100))

		line := entities.CartLine{
			ProductID:        product.ID,
			ProductName:      product.Name,
			MerchantID:       product.MerchantID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			DiscountPercent:  discount,
			SubtotalOriginal: original,
			Subtotal:         discounted,
			Savings:          roundCents(original - discounted),
		}
		if merchant != nil {
			line.MerchantName = merchant.TradeName
		}

		view.Items = append(view.Items, line)
		view.SubtotalOriginal = roundCents(view.SubtotalOriginal + line.SubtotalOriginal)
		view.Subtotal = roundCents(view.Subtotal + line.Subtotal)
		view.Savings = roundCents(view.Savings + line.Savings)
	}

	return view, nil
}

// checkMerchantLock rejects the incoming merchant when the cart already
// holds items of a different one. The lock is evaluated on item provenance:
// items of a since-deactivated merchant still block.
func (u *CartUsecase) checkMerchantLock(ctx context.Context, tenantID, customerID, incomingMerchantID uuid.UUID) error {
	items, err := u.cartRepo.GetItems(ctx, customerID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	current, err := u.productRepo.GetByID(ctx, tenantID, items[0].ProductID)
	if err != nil {
		return err
	}
	if current.MerchantID == incomingMerchantID {
		return nil
	}

	name := current.MerchantID.String()
	if merchant, err := u.merchantRepo.GetByID(ctx, tenantID, current.MerchantID); err == nil {
		name = merchant.TradeName
	}
	return &domainerrors.MerchantConflictError{MerchantName: name}
}

// roundCents rounds a monetary value to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
