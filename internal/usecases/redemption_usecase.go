package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/domain/repositories"
)

// RedemptionUsecase processes redemption-code presentations by merchant
// principals. An order reaches its terminal validated state only when every
// merchant represented in it has confirmed its own lines.
type RedemptionUsecase struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	merchantRepo repositories.MerchantRepository
	uow          repositories.UnitOfWork
	guard        *Guard
}

// NewRedemptionUsecase creates a new redemption usecase
func NewRedemptionUsecase(
	orderRepo repositories.OrderRepository,
	customerRepo repositories.CustomerRepository,
	merchantRepo repositories.MerchantRepository,
	uow repositories.UnitOfWork,
	guard *Guard,
) *RedemptionUsecase {
	return &RedemptionUsecase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		merchantRepo: merchantRepo,
		uow:          uow,
		guard:        guard,
	}
}

// Confirm marks the calling merchant's portion of the order as redeemed.
// The whole step runs in one transaction: line confirmation, the possible
// promotion to validated and the customer's last-redemption marker commit
// together or not at all. A repeated call by the same merchant matches zero
// unconfirmed lines and fails with NothingToConfirm, leaving no trace.
func (u *RedemptionUsecase) Confirm(ctx context.Context, scope Scope, code string) (*entities.RedemptionResult, error) {
	p := scope.Principal()
	if p == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if p.Type != entities.PrincipalTypeMerchant {
		return nil, domainerrors.ErrForbidden
	}
	merchantID := p.ID

	var result *entities.RedemptionResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		// The locking lookup serializes confirms per order: without it two
		// merchants confirming concurrently could each miss the other's
		// lines in the count below and leave the order pending forever.
		order, err := u.orderRepo.GetByCodeForUpdate(txCtx, code)
		if err != nil {
			return err
		}

		// The code alone located the order; authorization is re-derived
		// from the tenant it resolved to.
		if _, err := u.merchantRepo.GetByID(txCtx, order.TenantID, merchantID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.ErrForbidden
			}
			return err
		}

		if order.Status == entities.OrderStatusValidated {
			return domainerrors.ErrAlreadyRedeemed
		}

		now := time.Now()
		confirmed, err := u.orderRepo.ConfirmLines(txCtx, order.ID, merchantID, now)
		if err != nil {
			return err
		}
		if confirmed == 0 {
			return &domainerrors.NothingToConfirmError{MerchantID: merchantID}
		}

		total, confirmedTotal, err := u.orderRepo.CountLines(txCtx, order.ID)
		if err != nil {
			return err
		}

		result = &entities.RedemptionResult{
			OrderID:        order.ID,
			Code:           order.Code,
			Status:         entities.OrderStatusPending,
			ConfirmedLines: int(confirmedTotal),
			TotalLines:     int(total),
		}

		if total > 0 && confirmedTotal == total {
			if err := u.orderRepo.MarkValidated(txCtx, order.ID, now); err != nil {
				return err
			}
			if err := u.customerRepo.TouchLastRedemption(txCtx, order.CustomerID, now); err != nil {
				return err
			}
			result.Status = entities.OrderStatusValidated
			result.ValidatedAt = null.TimeFrom(now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.guard.Audit(ctx, scope, "order.confirm", map[string]interface{}{
		"order_id":    result.OrderID,
		"code":        result.Code,
		"merchant_id": merchantID,
		"status":      result.Status,
	})
	return result, nil
}
