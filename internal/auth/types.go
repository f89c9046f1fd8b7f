package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// context keys set by the middleware
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
