package handlers

import (
	"context"
	"net/http"

	"github.com/calebmorton/storefront/internal/auth"
	"github.com/calebmorton/storefront/internal/models"
	"github.com/calebmorton/storefront/internal/services"
)

// mockAuthService is a mock implementation of AuthServiceInterface
type mockAuthService struct {
	LoginFunc    func(ctx context.Context, email, password string) (*services.AuthResponse, error)
	RegisterFunc func(ctx context.Context, email, password, name string) (*services.UserResponse, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*services.AuthResponse, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthService) Register(ctx context.Context, email, password, name string) (*services.UserResponse, error) {
	return m.RegisterFunc(ctx, email, password, name)
}

// mockProductService is a mock implementation of ProductServiceInterface
type mockProductService struct {
	ListFunc func(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	GetFunc  func(ctx context.Context, id string) (*models.Product, error)
	SeedFunc func(ctx context.Context) (int, error)
}

func (m *mockProductService) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockProductService) Seed(ctx context.Context) (int, error) {
	return m.SeedFunc(ctx)
}

// mockCartService is a mock implementation of CartServiceInterface
type mockCartService struct {
	GetFunc        func(ctx context.Context, userID string) (*models.Cart, error)
	AddItemFunc    func(ctx context.Context, userID, productID string, quantity int) error
	RemoveItemFunc func(ctx context.Context, userID, productID string) error
}

func (m *mockCartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	return m.GetFunc(ctx, userID)
}

func (m *mockCartService) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	return m.AddItemFunc(ctx, userID, productID, quantity)
}

func (m *mockCartService) RemoveItem(ctx context.Context, userID, productID string) error {
	return m.RemoveItemFunc(ctx, userID, productID)
}

// mockUserService is a mock implementation of UserServiceInterface
type mockUserService struct {
	GetProfileFunc func(ctx context.Context, id string) (*services.UserResponse, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, id string) (*services.UserResponse, error) {
	return m.GetProfileFunc(ctx, id)
}

// withSession attaches session claims to a request, as the access gate would
func withSession(r *http.Request, userID string) *http.Request {
	claims := &models.SessionClaims{UserID: userID, Email: userID + "@example.com"}
	ctx := context.WithValue(r.Context(), auth.SessionContextKey, claims)
	return r.WithContext(ctx)
}
