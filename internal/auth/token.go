package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/calebmorton/storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager issues and validates signed session tokens. Tokens carry a
// minimal identity projection {id, email, name}, expire after maxAge, and are
// replaced whole on refresh - never mutated in place.
type SessionManager struct {
	secret    string
	maxAge    time.Duration
	updateAge time.Duration
}

func NewSessionManager(secret string, maxAge, updateAge time.Duration) *SessionManager {
	return &SessionManager{
		secret:    secret,
		maxAge:    maxAge,
		updateAge: updateAge,
	}
}

// MaxAge returns the absolute session lifetime.
func (sm *SessionManager) MaxAge() time.Duration {
	return sm.maxAge
}

// Issue mints a session token for a freshly authenticated user.
func (sm *SessionManager) Issue(userID, email, name string) (string, error) {
	now := time.Now()

	claims := &models.SessionClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(sm.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(sm.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies a presented token. A token decodes successfully only if
// its signature is valid and it has not expired; any other condition is
// reported as ErrUnauthorized and treated by callers as "no session".
func (sm *SessionManager) Validate(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, models.ErrUnauthorized
	}

	claims := &models.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(sm.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrUnauthorized
	}

	if claims.UserID == "" {
		return nil, models.ErrUnauthorized
	}

	return claims, nil
}

// NeedsRefresh reports whether a valid token is past its update age and
// should be reissued with a renewed expiry (sliding session).
func (sm *SessionManager) NeedsRefresh(claims *models.SessionClaims, now time.Time) bool {
	if claims.IssuedAt == nil {
		return false
	}
	return now.Sub(claims.IssuedAt.Time) >= sm.updateAge
}

// Refresh issues a replacement token carrying the same identity projection.
func (sm *SessionManager) Refresh(claims *models.SessionClaims) (string, error) {
	return sm.Issue(claims.UserID, claims.Email, claims.Name)
}
