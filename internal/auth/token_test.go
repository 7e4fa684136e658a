package auth

import (
	"testing"
	"time"

	"github.com/calebmorton/storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-secret-0123456789"

func newTestSessionManager() *SessionManager {
	return NewSessionManager(testSecret, 7*24*time.Hour, 24*time.Hour)
}

func TestSessionManager_IssueAndValidate(t *testing.T) {
	sm := newTestSessionManager()

	token, err := sm.Issue("user-1", "user@example.com", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionManager_Validate_EmptyToken(t *testing.T) {
	sm := newTestSessionManager()

	_, err := sm.Validate("")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestSessionManager_Validate_Malformed(t *testing.T) {
	sm := newTestSessionManager()

	_, err := sm.Validate("not-a-token")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestSessionManager_Validate_WrongSecret(t *testing.T) {
	other := NewSessionManager("a-completely-different-secret-value", time.Hour, time.Minute)
	token, err := other.Issue("user-1", "user@example.com", "Test User")
	require.NoError(t, err)

	sm := newTestSessionManager()
	_, err = sm.Validate(token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestSessionManager_Validate_Expired(t *testing.T) {
	sm := newTestSessionManager()

	// Sign an already-expired token with the right secret
	claims := &models.SessionClaims{
		UserID: "user-1",
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = sm.Validate(token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestSessionManager_Validate_RejectsMissingUserID(t *testing.T) {
	sm := newTestSessionManager()

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = sm.Validate(token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestSessionManager_NeedsRefresh(t *testing.T) {
	sm := newTestSessionManager()

	issued := time.Now()
	claims := &models.SessionClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issued),
		},
	}

	assert.False(t, sm.NeedsRefresh(claims, issued.Add(time.Hour)))
	assert.True(t, sm.NeedsRefresh(claims, issued.Add(25*time.Hour)))
}

func TestSessionManager_Refresh_ReplacesExpiry(t *testing.T) {
	sm := NewSessionManager(testSecret, time.Hour, time.Minute)

	token, err := sm.Issue("user-1", "user@example.com", "Test User")
	require.NoError(t, err)
	claims, err := sm.Validate(token)
	require.NoError(t, err)

	fresh, err := sm.Refresh(claims)
	require.NoError(t, err)

	freshClaims, err := sm.Validate(fresh)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, freshClaims.UserID)
	assert.Equal(t, claims.Email, freshClaims.Email)
	// A refresh is a whole-token replacement with its own identity
	assert.NotEqual(t, claims.ID, freshClaims.ID)
	assert.True(t, !freshClaims.ExpiresAt.Time.Before(claims.ExpiresAt.Time))
}
