package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/calebmorton/storefront/internal/models"
)

// ProductRepository defines the catalog store capability
type ProductRepository interface {
	List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Count(ctx context.Context) (int, error)
	CreateMany(ctx context.Context, products []*models.Product) error
}

// ProductService handles catalog business logic
type ProductService struct {
	repo        ProductRepository
	seedEnabled bool
	logger      *slog.Logger
}

func NewProductService(repo ProductRepository, seedEnabled bool, logger *slog.Logger) *ProductService {
	return &ProductService{repo: repo, seedEnabled: seedEnabled, logger: logger}
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list products", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get product", slog.String("product_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return product, nil
}

// Seed inserts the sample catalog when the store is empty. Calling it again
// is a no-op; it returns the number of products inserted. Seeding is only
// enabled outside production.
func (s *ProductService) Seed(ctx context.Context) (int, error) {
	if !s.seedEnabled {
		return 0, models.ErrForbidden
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count products", slog.Any("error", err))
		return 0, models.ErrInternalServer
	}
	if count > 0 {
		return 0, nil
	}

	samples := sampleProducts()
	if err := s.repo.CreateMany(ctx, samples); err != nil {
		s.logger.Error("failed to seed products", slog.Any("error", err))
		return 0, models.ErrInternalServer
	}

	s.logger.Info("catalog seeded", slog.Int("products", len(samples)))
	return len(samples), nil
}

func sampleProducts() []*models.Product {
	return []*models.Product{
		{
			Name:        "Premium Wireless Headphones",
			Description: "High-quality noise-canceling wireless headphones with premium sound.",
			Price:       299.99,
			Category:    "electronics",
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
		},
		{
			Name:        "Minimalist Leather Wallet",
			Description: "Handcrafted genuine leather wallet with RFID protection.",
			Price:       89.99,
			Category:    "accessories",
			ImageURL:    "https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg",
		},
		{
			Name:        "Organic Cotton T-Shirt",
			Description: "Sustainable, soft organic cotton t-shirt in various colors.",
			Price:       45.00,
			Category:    "clothing",
			ImageURL:    "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg",
		},
		{
			Name:        "Smart Fitness Tracker",
			Description: "Advanced fitness tracking with heart rate monitoring and GPS.",
			Price:       199.99,
			Category:    "electronics",
			ImageURL:    "https://images.pexels.com/photos/267394/pexels-photo-267394.jpeg",
		},
		{
			Name:        "Ceramic Coffee Mug",
			Description: "Handmade ceramic mug perfect for your morning coffee ritual.",
			Price:       24.99,
			Category:    "home",
			ImageURL:    "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg",
		},
		{
			Name:        "Designer Sunglasses",
			Description: "UV protection sunglasses with premium polarized lenses.",
			Price:       159.99,
			Category:    "accessories",
			ImageURL:    "https://images.pexels.com/photos/701877/pexels-photo-701877.jpeg",
		},
		{
			Name:        "Wool Blend Sweater",
			Description: "Cozy wool blend sweater perfect for cool weather.",
			Price:       120.00,
			Category:    "clothing",
			ImageURL:    "https://images.pexels.com/photos/1240892/pexels-photo-1240892.jpeg",
		},
		{
			Name:        "Bluetooth Speaker",
			Description: "Portable waterproof Bluetooth speaker with premium sound quality.",
			Price:       79.99,
			Category:    "electronics",
			ImageURL:    "https://images.pexels.com/photos/1440727/pexels-photo-1440727.jpeg",
		},
		{
			Name:        "Stainless Steel Water Bottle",
			Description: "Insulated water bottle that keeps drinks cold for 24 hours.",
			Price:       34.99,
			Category:    "accessories",
			ImageURL:    "https://images.pexels.com/photos/1000084/pexels-photo-1000084.jpeg",
		},
		{
			Name:        "Ergonomic Office Chair",
			Description: "Comfortable office chair with lumbar support and adjustable height.",
			Price:       299.99,
			Category:    "furniture",
			ImageURL:    "https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg",
		},
	}
}
