package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/calebmorton/storefront/internal/models"
	"github.com/calebmorton/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartForUser(userID string) *models.Cart {
	return &models.Cart{
		UserID: userID,
		Items: []models.CartItem{
			{ProductID: "p1", ProductName: "Mug", Price: 24.99, Quantity: 2},
		},
		ItemCount: 2,
		Subtotal:  49.98,
	}
}

func TestCartHandler_Get_RequiresSession(t *testing.T) {
	handler := NewCartHandler(&mockCartService{})

	r := httptest.NewRequest("GET", "/api/cart", nil)
	w := httptest.NewRecorder()
	handler.Get(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartHandler_Get_ReturnsOwnCart(t *testing.T) {
	var gotUserID string
	service := &mockCartService{
		GetFunc: func(ctx context.Context, userID string) (*models.Cart, error) {
			gotUserID = userID
			return cartForUser(userID), nil
		},
	}
	handler := NewCartHandler(service)

	r := withSession(httptest.NewRequest("GET", "/api/cart", nil), "user-1")
	w := httptest.NewRecorder()
	handler.Get(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)

	var cart models.Cart
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
	assert.Equal(t, 2, cart.ItemCount)
	assert.InDelta(t, 49.98, cart.Subtotal, 0.001)
}

func TestCartHandler_AddItem_Success(t *testing.T) {
	var gotProductID string
	var gotQuantity int
	service := &mockCartService{
		AddItemFunc: func(ctx context.Context, userID, productID string, quantity int) error {
			gotProductID = productID
			gotQuantity = quantity
			return nil
		},
		GetFunc: func(ctx context.Context, userID string) (*models.Cart, error) {
			return cartForUser(userID), nil
		},
	}
	handler := NewCartHandler(service)

	r := withSession(httptest.NewRequest("POST", "/api/cart",
		strings.NewReader(`{"productId":"p1","quantity":2}`)), "user-1")
	w := httptest.NewRecorder()
	handler.AddItem(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", gotProductID)
	assert.Equal(t, 2, gotQuantity)
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	service := &mockCartService{
		AddItemFunc: func(ctx context.Context, userID, productID string, quantity int) error {
			return models.ErrNotFound
		},
	}
	handler := NewCartHandler(service)

	r := withSession(httptest.NewRequest("POST", "/api/cart",
		strings.NewReader(`{"productId":"missing","quantity":1}`)), "user-1")
	w := httptest.NewRecorder()
	handler.AddItem(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_AddItem_InvalidQuantity(t *testing.T) {
	handler := NewCartHandler(&mockCartService{})

	for _, body := range []string{
		`{"productId":"p1","quantity":0}`,
		`{"productId":"p1","quantity":-1}`,
		`{"productId":"","quantity":1}`,
	} {
		r := withSession(httptest.NewRequest("POST", "/api/cart", strings.NewReader(body)), "user-1")
		w := httptest.NewRecorder()
		handler.AddItem(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestCartHandler_RemoveItem(t *testing.T) {
	var removed string
	service := &mockCartService{
		RemoveItemFunc: func(ctx context.Context, userID, productID string) error {
			removed = productID
			return nil
		},
		GetFunc: func(ctx context.Context, userID string) (*models.Cart, error) {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		},
	}
	handler := NewCartHandler(service)

	r := withSession(httptest.NewRequest("POST", "/api/cart/remove",
		strings.NewReader(`{"productId":"p1"}`)), "user-1")
	w := httptest.NewRecorder()
	handler.RemoveItem(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", removed)
}

func TestProfileHandler_Get(t *testing.T) {
	service := &mockUserService{
		GetProfileFunc: func(ctx context.Context, id string) (*services.UserResponse, error) {
			return &services.UserResponse{ID: id, Email: "user@example.com", Name: "Test User"}, nil
		},
	}
	handler := NewProfileHandler(service)

	r := withSession(httptest.NewRequest("GET", "/api/profile", nil), "user-1")
	w := httptest.NewRecorder()
	handler.Get(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")

	w = httptest.NewRecorder()
	handler.Get(w, httptest.NewRequest("GET", "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
