package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/calebmorton/storefront/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	GetByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	CreateFunc     func(ctx context.Context, user *models.User) (*models.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return m.CreateFunc(ctx, user)
}

// mockProductRepository is a mock implementation of ProductRepository
type mockProductRepository struct {
	ListFunc       func(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.Product, error)
	CountFunc      func(ctx context.Context) (int, error)
	CreateManyFunc func(ctx context.Context, products []*models.Product) error
}

func (m *mockProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockProductRepository) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

func (m *mockProductRepository) CreateMany(ctx context.Context, products []*models.Product) error {
	return m.CreateManyFunc(ctx, products)
}

// mockCartRepository is a mock implementation of CartRepository
type mockCartRepository struct {
	GetItemsFunc   func(ctx context.Context, userID string) ([]models.CartItem, error)
	UpsertItemFunc func(ctx context.Context, userID, productID string, quantity int) error
	RemoveItemFunc func(ctx context.Context, userID, productID string) error
}

func (m *mockCartRepository) GetItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	return m.GetItemsFunc(ctx, userID)
}

func (m *mockCartRepository) UpsertItem(ctx context.Context, userID, productID string, quantity int) error {
	return m.UpsertItemFunc(ctx, userID, productID, quantity)
}

func (m *mockCartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	return m.RemoveItemFunc(ctx, userID, productID)
}

// mockAttemptStore is a mock implementation of AttemptStore
type mockAttemptStore struct {
	GetFunc           func(ctx context.Context, email string) (*models.AttemptRecord, error)
	RecordFailureFunc func(ctx context.Context, email string, at time.Time) (int, error)
	ClearFunc         func(ctx context.Context, email string) error
	PurgeStaleFunc    func(ctx context.Context, olderThan time.Time) (int64, error)
}

func (m *mockAttemptStore) Get(ctx context.Context, email string) (*models.AttemptRecord, error) {
	return m.GetFunc(ctx, email)
}

func (m *mockAttemptStore) RecordFailure(ctx context.Context, email string, at time.Time) (int, error) {
	return m.RecordFailureFunc(ctx, email, at)
}

func (m *mockAttemptStore) Clear(ctx context.Context, email string) error {
	return m.ClearFunc(ctx, email)
}

func (m *mockAttemptStore) PurgeStale(ctx context.Context, olderThan time.Time) (int64, error) {
	return m.PurgeStaleFunc(ctx, olderThan)
}
