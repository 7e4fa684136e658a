package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/calebmorton/storefront/internal/models"
)

// CartRepository defines the cart store capability
type CartRepository interface {
	GetItems(ctx context.Context, userID string) ([]models.CartItem, error)
	UpsertItem(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
}

// CartService handles per-user cart business logic
type CartService struct {
	repo     CartRepository
	products ProductRepository
	logger   *slog.Logger
}

func NewCartService(repo CartRepository, products ProductRepository, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		logger:   logger,
	}
}

// Get returns the user's cart with derived totals.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get cart", slog.String("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	cart := &models.Cart{UserID: userID, Items: items}
	for _, item := range items {
		cart.ItemCount += item.Quantity
		cart.Subtotal += item.Price * float64(item.Quantity)
	}

	return cart, nil
}

// AddItem puts a product in the cart. An existing line has its quantity
// replaced, not accumulated.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if productID == "" || quantity < 1 {
		return models.ErrBadRequest
	}

	// The product must exist before it can be carted
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to verify product", slog.String("product_id", productID), slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.repo.UpsertItem(ctx, userID, productID, quantity); err != nil {
		s.logger.Error("failed to add cart item",
			slog.String("user_id", userID),
			slog.String("product_id", productID),
			slog.Any("error", err))
		return models.ErrInternalServer
	}

	return nil
}

// RemoveItem drops a product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return models.ErrBadRequest
	}

	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		s.logger.Error("failed to remove cart item",
			slog.String("user_id", userID),
			slog.String("product_id", productID),
			slog.Any("error", err))
		return models.ErrInternalServer
	}

	return nil
}
