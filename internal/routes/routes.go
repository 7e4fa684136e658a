package routes

import (
	"github.com/calebmorton/storefront/internal/handlers"
	"github.com/calebmorton/storefront/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes. Route protection is
// enforced by the session gate installed router-wide in main; handlers for
// protected resources additionally require claims in the request context.
func RegisterRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	cartHandler *handlers.CartHandler,
	profileHandler *handlers.ProfileHandler,
) {
	// Rate limiting config for auth endpoints
	rateLimitConfig := middleware.DefaultAuthRateLimit()

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/login", authHandler.Login)
			r.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/register", authHandler.Register)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)
			r.Post("/seed", productHandler.Seed)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/", cartHandler.AddItem)
			r.Post("/remove", cartHandler.RemoveItem)
		})

		r.Get("/profile", profileHandler.Get)
	})
}
