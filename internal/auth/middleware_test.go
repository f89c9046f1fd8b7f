package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", middleware, func(c *gin.Context) {
		userID, ok := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "authenticated": ok})
	})

	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-123", "test@example.com")
	require.NoError(t, err)

	r := newRouter(AuthMiddleware(view.NewFactory(view.Options{})))

	tests := []struct {
		name          string
		authorization string
		status        int
		body          string
	}{
		{
			name:          "valid token",
			authorization: "Bearer " + token,
			status:        http.StatusOK,
			body:          `{"user_id":"user-123","authenticated":true}`,
		},
		{
			name:   "missing header",
			status: http.StatusUnauthorized,
			body:   `{"title":"Unauthorized","message":"authorization header required","errors":[]}`,
		},
		{
			name:          "wrong scheme",
			authorization: "Token " + token,
			status:        http.StatusUnauthorized,
			body:          `{"title":"Unauthorized","message":"invalid authorization header format","errors":[]}`,
		},
		{
			name:          "bad token",
			authorization: "Bearer nope",
			status:        http.StatusUnauthorized,
			body:          `{"title":"Unauthorized","message":"invalid or expired token","errors":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(r, tt.authorization)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-123", "test@example.com")
	require.NoError(t, err)

	r := newRouter(OptionalAuthMiddleware())

	rec := get(r, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"","authenticated":false}`, rec.Body.String())

	rec = get(r, "Bearer broken")
	assert.JSONEq(t, `{"user_id":"","authenticated":false}`, rec.Body.String())

	rec = get(r, "Bearer "+token)
	assert.JSONEq(t, `{"user_id":"user-123","authenticated":true}`, rec.Body.String())
}

func TestSetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	SetUser(c, "user-9", "nine@example.com")

	userID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "user-9", userID)
	assert.Equal(t, "nine@example.com", c.GetString(UserEmailKey))
}
