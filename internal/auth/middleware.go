package auth

import (
	"net/http"
	"strings"

	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
)

const unauthorizedTitle = "Unauthorized"

// validates JWT tokens and adds user info to context
func AuthMiddleware(f *view.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			f.AbortWith(c, unauthorizedTitle, "authorization header required", http.StatusUnauthorized)
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			f.AbortWith(c, unauthorizedTitle, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			f.AbortWith(c, unauthorizedTitle, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		SetUser(c, claims.UserID, claims.Email)
		c.Next()
	}
}

// validates JWT if present but doesn't require it
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := ValidateJWT(token); err == nil {
				SetUser(c, claims.UserID, claims.Email)
			}
		}

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}

// marks the request as authenticated, tests use it to skip token handling
func SetUser(c *gin.Context, userID, email string) {
	c.Set(UserIDKey, userID)
	c.Set(UserEmailKey, email)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
