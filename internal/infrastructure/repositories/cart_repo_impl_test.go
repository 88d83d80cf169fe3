package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
)

func TestCartRepository_InsertGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	createCartItemTable(t, db)
	repo := NewCartRepository(db)

	customerID := uuid.New()
	item := &entities.CartItem{
		TenantID:   uuid.New(),
		CustomerID: customerID,
		ProductID:  uuid.New(),
		Quantity:   2,
		UnitPrice:  25.90,
	}
	require.NoError(t, repo.Insert(context.Background(), item))

	got, err := repo.GetItem(context.Background(), customerID, item.ProductID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Quantity)
	require.Equal(t, 25.90, got.UnitPrice)

	got.Quantity = 5
	got.UnitPrice = 19.90
	require.NoError(t, repo.Update(context.Background(), got))

	got, err = repo.GetItem(context.Background(), customerID, item.ProductID)
	require.NoError(t, err)
	require.Equal(t, 5, got.Quantity)
	require.Equal(t, 19.90, got.UnitPrice)

	require.NoError(t, repo.Delete(context.Background(), customerID, item.ProductID))
	_, err = repo.GetItem(context.Background(), customerID, item.ProductID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartRepository_UpdateMissingItem(t *testing.T) {
	db := newTestDB(t)
	createCartItemTable(t, db)
	repo := NewCartRepository(db)

	err := repo.Update(context.Background(), &entities.CartItem{
		CustomerID: uuid.New(),
		ProductID:  uuid.New(),
		Quantity:   1,
	})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartRepository_DeleteMissingItem(t *testing.T) {
	db := newTestDB(t)
	createCartItemTable(t, db)
	repo := NewCartRepository(db)

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartRepository_ClearRemovesOnlyOwnItems(t *testing.T) {
	db := newTestDB(t)
	createCartItemTable(t, db)
	repo := NewCartRepository(db)

	customerID := uuid.New()
	otherID := uuid.New()
	tenantID := uuid.New()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Insert(context.Background(), &entities.CartItem{
			TenantID: tenantID, CustomerID: customerID, ProductID: uuid.New(), Quantity: 1, UnitPrice: 10,
		}))
	}
	require.NoError(t, repo.Insert(context.Background(), &entities.CartItem{
		TenantID: tenantID, CustomerID: otherID, ProductID: uuid.New(), Quantity: 1, UnitPrice: 10,
	}))

	require.NoError(t, repo.Clear(context.Background(), customerID))

	items, err := repo.GetItems(context.Background(), customerID)
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = repo.GetItems(context.Background(), otherID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Clearing an already empty cart is fine
	require.NoError(t, repo.Clear(context.Background(), customerID))
}
