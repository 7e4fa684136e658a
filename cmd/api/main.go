package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calebmorton/storefront/internal/auth"
	"github.com/calebmorton/storefront/internal/background"
	"github.com/calebmorton/storefront/internal/config"
	"github.com/calebmorton/storefront/internal/database"
	"github.com/calebmorton/storefront/internal/handlers"
	middlewareCustom "github.com/calebmorton/storefront/internal/middleware"
	"github.com/calebmorton/storefront/internal/repositories"
	"github.com/calebmorton/storefront/internal/routes"
	"github.com/calebmorton/storefront/internal/services"
	pkghttp "github.com/calebmorton/storefront/pkg/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		slog.String("env", cfg.Server.Env),
		slog.String("lockout_store", cfg.Lockout.Store))

	// Initialize database
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)

	attemptStore, redisClient, err := buildAttemptStore(cfg, db)
	if err != nil {
		logger.Error("failed to initialize attempt store", slog.Any("error", err))
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize session manager
	sessions := auth.NewSessionManager(cfg.Session.Secret, cfg.Session.MaxAge, cfg.Session.UpdateAge)

	// Initialize services
	lockoutService := services.NewLockoutService(attemptStore, services.LockoutConfig{
		MaxAttempts:     cfg.Lockout.MaxAttempts,
		LockoutDuration: cfg.Lockout.LockoutDuration,
	}, logger)
	authService := services.NewAuthService(userRepo, lockoutService, sessions, logger)
	productService := services.NewProductService(productRepo, cfg.Server.Env != "production", logger)
	cartService := services.NewCartService(cartRepo, productRepo, logger)
	userService := services.NewUserService(userRepo, logger)

	// Stale attempt records are swept in the background; expiry itself is
	// checked on read, so the sweep cadence is not correctness-critical
	sweeper := background.NewSweeper(lockoutService, cfg.Lockout.SweepInterval, logger)

	// Initialize handlers
	cookieConfig := auth.CookieConfig{Secure: cfg.Server.Env == "production"}
	authHandler := handlers.NewAuthHandler(authService, sessions, cookieConfig)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	profileHandler := handlers.NewProfileHandler(userService)

	// Access gate: classifies every route and verifies sessions on the
	// protected ones. The catalog is browsable without an account.
	gateConfig := auth.DefaultGateConfig()
	gateConfig.PublicPrefixes = append(gateConfig.PublicPrefixes, "/api/products")
	gateConfig.Cookie = cookieConfig
	gate := auth.NewSessionGate(sessions, gateConfig)

	// Setup CORS middleware
	corsConfig := middlewareCustom.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.Server.AllowedOrigins

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(corsConfig))
	router.Use(middlewareCustom.RequestLogger(logger, &pkghttp.IPConfig{TrustedProxies: cfg.Server.TrustedProxies}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(gate.Middleware())

	// Register routes
	routes.RegisterRoutes(router, authHandler, productHandler, cartHandler, profileHandler)

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sweeper.Start()

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	sweeper.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

// buildAttemptStore selects the lockout backing store. Memory suits a single
// process; Postgres and Redis share state across replicas.
func buildAttemptStore(cfg *config.Config, db *database.DB) (services.AttemptStore, *redis.Client, error) {
	switch cfg.Lockout.Store {
	case "postgres":
		return repositories.NewPostgresAttemptStore(db), nil, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return repositories.NewRedisAttemptStore(client, cfg.Lockout.LockoutDuration), client, nil
	default:
		return repositories.NewMemoryAttemptStore(), nil, nil
	}
}
