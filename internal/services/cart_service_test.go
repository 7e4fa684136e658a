package services

import (
	"context"
	"testing"
	"time"

	"github.com/calebmorton/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingProductRepo() *mockProductRepository {
	return &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Product, error) {
			if id == "p1" {
				return &models.Product{ID: "p1", Name: "Mug", Price: 24.99}, nil
			}
			return nil, models.ErrNotFound
		},
	}
}

func TestCartService_Get_ComputesTotals(t *testing.T) {
	repo := &mockCartRepository{
		GetItemsFunc: func(ctx context.Context, userID string) ([]models.CartItem, error) {
			return []models.CartItem{
				{ProductID: "p1", ProductName: "Mug", Price: 24.99, Quantity: 2, AddedAt: time.Now()},
				{ProductID: "p2", ProductName: "Wallet", Price: 89.99, Quantity: 1, AddedAt: time.Now()},
			}, nil
		},
	}
	svc := NewCartService(repo, existingProductRepo(), testLogger())

	cart, err := svc.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Equal(t, 3, cart.ItemCount)
	assert.InDelta(t, 139.97, cart.Subtotal, 0.001)
}

func TestCartService_Get_EmptyCart(t *testing.T) {
	repo := &mockCartRepository{
		GetItemsFunc: func(ctx context.Context, userID string) ([]models.CartItem, error) {
			return nil, nil
		},
	}
	svc := NewCartService(repo, existingProductRepo(), testLogger())

	cart, err := svc.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 0, cart.ItemCount)
	assert.Equal(t, 0.0, cart.Subtotal)
}

func TestCartService_AddItem_ReplacesQuantity(t *testing.T) {
	var gotQuantity int
	repo := &mockCartRepository{
		UpsertItemFunc: func(ctx context.Context, userID, productID string, quantity int) error {
			gotQuantity = quantity
			return nil
		},
	}
	svc := NewCartService(repo, existingProductRepo(), testLogger())

	require.NoError(t, svc.AddItem(context.Background(), "user-1", "p1", 3))
	assert.Equal(t, 3, gotQuantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	repo := &mockCartRepository{
		UpsertItemFunc: func(ctx context.Context, userID, productID string, quantity int) error {
			t.Fatal("UpsertItem must not be called for unknown products")
			return nil
		},
	}
	svc := NewCartService(repo, existingProductRepo(), testLogger())

	err := svc.AddItem(context.Background(), "user-1", "missing", 1)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	svc := NewCartService(&mockCartRepository{}, existingProductRepo(), testLogger())

	assert.ErrorIs(t, svc.AddItem(context.Background(), "user-1", "p1", 0), models.ErrBadRequest)
	assert.ErrorIs(t, svc.AddItem(context.Background(), "user-1", "p1", -2), models.ErrBadRequest)
	assert.ErrorIs(t, svc.AddItem(context.Background(), "user-1", "", 1), models.ErrBadRequest)
}

func TestCartService_RemoveItem(t *testing.T) {
	removed := ""
	repo := &mockCartRepository{
		RemoveItemFunc: func(ctx context.Context, userID, productID string) error {
			removed = productID
			return nil
		},
	}
	svc := NewCartService(repo, existingProductRepo(), testLogger())

	require.NoError(t, svc.RemoveItem(context.Background(), "user-1", "p1"))
	assert.Equal(t, "p1", removed)

	assert.ErrorIs(t, svc.RemoveItem(context.Background(), "user-1", ""), models.ErrBadRequest)
}
