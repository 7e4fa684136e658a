package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/calebmorton/storefront/internal/auth"
	"github.com/calebmorton/storefront/internal/models"
	"github.com/calebmorton/storefront/internal/services"
	pkghttp "github.com/calebmorton/storefront/pkg/http"
)

// UserServiceInterface defines the interface for user profile business logic
type UserServiceInterface interface {
	GetProfile(ctx context.Context, id string) (*services.UserResponse, error)
}

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	service UserServiceInterface
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service UserServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get returns the authenticated user's profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetSessionFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "unauthorized")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "User not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, profile)
}
