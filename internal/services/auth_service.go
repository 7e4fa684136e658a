package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/calebmorton/storefront/internal/auth"
	"github.com/calebmorton/storefront/internal/models"
	pkgauth "github.com/calebmorton/storefront/pkg/auth"
	pkglogger "github.com/calebmorton/storefront/pkg/logger"
)

// UserRepository defines the user store capability consumed by services
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// AuthService handles authentication business logic
type AuthService struct {
	repo     UserRepository
	lockout  *LockoutService
	sessions *auth.SessionManager
	logger   *slog.Logger
}

func NewAuthService(repo UserRepository, lockout *LockoutService, sessions *auth.SessionManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		lockout:  lockout,
		sessions: sessions,
		logger:   logger,
	}
}

// UserResponse represents a user in the HTTP response
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse represents the response from a successful login
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// Login authenticates a user and issues a session token.
//
// The lockout check runs before the user store is touched. A missing user is
// not counted as a failure; only password mismatches feed the lockout counter.
// Both cases surface as ErrUnauthorized so callers cannot distinguish them.
// The token is issued last, so a failure anywhere earlier never leaves a
// half-authenticated state.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, models.ErrBadRequest
	}

	now := time.Now()

	decision, err := s.lockout.Check(ctx, email, now)
	if err != nil {
		s.logger.Error("lockout check failed", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	if !decision.Allowed {
		s.logger.Info("login rejected: account locked out",
			slog.String("email", pkglogger.SanitizedEmail(email)),
			slog.Int("retry_after_minutes", decision.RetryAfterMinutes()))
		return nil, &models.RateLimitedError{RetryAfterMinutes: decision.RetryAfterMinutes()}
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("login failed: unknown email",
				slog.String("email", pkglogger.SanitizedEmail(email)))
			return nil, models.ErrUnauthorized
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		if recErr := s.lockout.RecordFailure(ctx, email, now); recErr != nil {
			s.logger.Error("failed to record login failure", slog.Any("error", recErr))
		}
		s.logger.Info("login failed: invalid credentials", slog.String("user_id", user.ID))
		return nil, models.ErrUnauthorized
	}

	if err := s.lockout.RecordSuccess(ctx, email); err != nil {
		s.logger.Error("failed to clear login failures", slog.Any("error", err))
	}

	token, err := s.sessions.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		s.logger.Error("failed to issue session token", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user logged in", slog.String("user_id", user.ID))

	return &AuthResponse{
		Token: token,
		User:  userModelToResponse(user),
	}, nil
}

// Register creates a new user account with an empty cart.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*UserResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || name == "" {
		return nil, models.ErrBadRequest
	}

	if err := pkgauth.ValidatePassword(password); err != nil {
		return nil, models.ErrBadRequest
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("registration failed: user already exists")
		return nil, models.ErrConflict
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.logger.Error("failed to check if user exists", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	passwordHash, err := pkgauth.HashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	user, err := s.repo.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.ErrConflict
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID))

	return userModelToResponse(user), nil
}

func userModelToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
