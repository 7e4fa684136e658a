package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the minimal identity projection carried by a session token.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
