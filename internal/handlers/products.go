package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/calebmorton/storefront/internal/models"
	pkghttp "github.com/calebmorton/storefront/pkg/http"
	"github.com/go-chi/chi/v5"
)

// ProductServiceInterface defines the interface for catalog business logic
type ProductServiceInterface interface {
	List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Seed(ctx context.Context) (int, error)
}

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	service ProductServiceInterface
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// ProductListResponse wraps a catalog listing
type ProductListResponse struct {
	Products []*models.Product `json:"products"`
	Count    int               `json:"count"`
}

// List returns catalog products, optionally filtered by category and price
// bounds via query parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}

// Get returns one product by id
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		pkghttp.WriteBadRequest(w, "Product id is required")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Product not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, product)
}

// Seed populates the catalog with sample products when it is empty
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.service.Seed(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrForbidden) {
			pkghttp.WriteForbidden(w, "Seeding is disabled in this environment")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]int{"inserted": inserted})
}

func parseProductFilter(r *http.Request) (models.ProductFilter, error) {
	filter := models.ProductFilter{
		Category: r.URL.Query().Get("category"),
	}

	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil || min < 0 {
			return filter, errors.New("minPrice must be a non-negative number")
		}
		filter.MinPrice = &min
	}

	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil || max < 0 {
			return filter, errors.New("maxPrice must be a non-negative number")
		}
		filter.MaxPrice = &max
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, errors.New("minPrice must not exceed maxPrice")
	}

	return filter, nil
}
