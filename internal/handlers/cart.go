package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmorton/storefront/internal/auth"
	"github.com/calebmorton/storefront/internal/models"
	pkghttp "github.com/calebmorton/storefront/pkg/http"
)

// CartServiceInterface defines the interface for cart business logic
type CartServiceInterface interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
}

// CartHandler handles cart HTTP requests. All routes require a session; the
// cart is keyed by the authenticated user, never by a client-supplied id.
type CartHandler struct {
	service CartServiceInterface
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service CartServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

// AddItemRequest represents the request body for adding a cart item
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// RemoveItemRequest represents the request body for removing a cart item
type RemoveItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// Get returns the authenticated user's cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetSessionFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "unauthorized")
		return
	}

	cart, err := h.service.Get(r.Context(), claims.UserID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, cart)
}

// AddItem puts a product in the authenticated user's cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetSessionFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "unauthorized")
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.service.AddItem(r.Context(), claims.UserID, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "Product not found")
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Invalid product or quantity")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	// Return the updated cart so clients can render without a second request
	cart, err := h.service.Get(r.Context(), claims.UserID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, cart)
}

// RemoveItem drops a product from the authenticated user's cart
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetSessionFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "unauthorized")
		return
	}

	var req RemoveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.service.RemoveItem(r.Context(), claims.UserID, req.ProductID); err != nil {
		switch {
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Invalid product id")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	cart, err := h.service.Get(r.Context(), claims.UserID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, cart)
}
