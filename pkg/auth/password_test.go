package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-1")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery-1", hash)

	assert.NoError(t, ComparePassword(hash, "correct-horse-battery-1"))
	assert.Error(t, ComparePassword(hash, "wrong-password-2"))
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "orchard7Lantern", false},
		{"too short", "ab1", true},
		{"no digit", "justlettershere", true},
		{"no letter", "123456789012", true},
		{"common", "password123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				// Callers only ever see the generic message
				assert.Equal(t, "invalid password", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
