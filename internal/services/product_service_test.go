package services

import (
	"context"
	"testing"

	"github.com/calebmorton/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_List_PassesFilterThrough(t *testing.T) {
	var gotFilter models.ProductFilter
	repo := &mockProductRepository{
		ListFunc: func(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
			gotFilter = filter
			return []*models.Product{{ID: "p1", Name: "Mug"}}, nil
		},
	}
	svc := NewProductService(repo, true, testLogger())

	min := 10.0
	products, err := svc.List(context.Background(), models.ProductFilter{Category: "home", MinPrice: &min})

	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "home", gotFilter.Category)
	require.NotNil(t, gotFilter.MinPrice)
	assert.Equal(t, 10.0, *gotFilter.MinPrice)
}

func TestProductService_Get_NotFound(t *testing.T) {
	repo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Product, error) {
			return nil, models.ErrNotFound
		},
	}
	svc := NewProductService(repo, true, testLogger())

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProductService_Seed_PopulatesEmptyCatalog(t *testing.T) {
	var created []*models.Product
	repo := &mockProductRepository{
		CountFunc: func(ctx context.Context) (int, error) { return 0, nil },
		CreateManyFunc: func(ctx context.Context, products []*models.Product) error {
			created = products
			return nil
		},
	}
	svc := NewProductService(repo, true, testLogger())

	inserted, err := svc.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, inserted)
	assert.Len(t, created, 10)
	for _, p := range created {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestProductService_Seed_SkipsNonEmptyCatalog(t *testing.T) {
	repo := &mockProductRepository{
		CountFunc: func(ctx context.Context) (int, error) { return 10, nil },
		CreateManyFunc: func(ctx context.Context, products []*models.Product) error {
			t.Fatal("CreateMany must not be called when the catalog is populated")
			return nil
		},
	}
	svc := NewProductService(repo, true, testLogger())

	inserted, err := svc.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestProductService_Seed_ForbiddenWhenDisabled(t *testing.T) {
	repo := &mockProductRepository{
		CountFunc: func(ctx context.Context) (int, error) {
			t.Fatal("the store must not be touched when seeding is disabled")
			return 0, nil
		},
	}
	svc := NewProductService(repo, false, testLogger())

	_, err := svc.Seed(context.Background())

	assert.ErrorIs(t, err, models.ErrForbidden)
}
