package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func signed(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return s
}

func TestGenerateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-123", "test@example.com")

	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3, "JWT should have 3 parts")
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("user-123", "test@example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET not set")
}

func TestValidateJWT_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	testCases := []struct {
		userID string
		email  string
	}{
		{"user-123", "test@example.com"},
		{"user-789-with-special-chars", "user+tag@example.com"},
	}

	for _, tc := range testCases {
		token, err := GenerateJWT(tc.userID, tc.email)
		require.NoError(t, err)

		claims, err := ValidateJWT(token)
		require.NoError(t, err)

		assert.Equal(t, tc.userID, claims.UserID)
		assert.Equal(t, tc.email, claims.Email)
		assert.Equal(t, tc.userID, claims.Subject)
		assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
	}
}

func TestValidateJWT_Rejects(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	valid, err := GenerateJWT("user-123", "test@example.com")
	require.NoError(t, err)

	live := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.jwt"},
		{"two parts", "only.two"},
		{"markup", "<script>alert('xss')</script>"},
		{"tampered", valid[:len(valid)-5] + "XXXXX"},
		{"expired", signed(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})},
		{"wrong secret", signed(t, jwt.SigningMethodHS256, []byte("different-secret-key"), Claims{
			UserID:           "user-123",
			RegisteredClaims: live,
		})},
		{"none algorithm", signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Claims{
			UserID:           "attacker",
			RegisteredClaims: live,
		})},
		{"missing user id", signed(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
			RegisteredClaims: live,
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token)
			assert.Error(t, err)
		})
	}
}
