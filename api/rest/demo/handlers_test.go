package demo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/algorave/viewkit/internal/testkit"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), view.NewFactory(view.Options{}))

	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestEcho(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"default status", `{"message":"hi"}`, http.StatusOK},
		{"created", `{"message":"hi","status":201}`, http.StatusCreated},
		{"non success status is coerced", `{"message":"hi","status":404}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, http.MethodPost, "/api/v1/echo", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "hi", testkit.DictResponseData(t, rec)["message"])
		})
	}
}

func TestEcho_InvalidBody(t *testing.T) {
	rec := do(newRouter(), http.MethodPost, "/api/v1/echo", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	data := testkit.DictResponseData(t, rec)
	assert.Equal(t, "Validation Error", data["title"])
	assert.Equal(t, "Invalid request body.", data["message"])
	assert.Len(t, data["errors"], 1)
}

func TestStopper(t *testing.T) {
	rec := do(newRouter(), http.MethodGet, "/api/v1/stopper", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"title":"Testing","message":"Stopper","errors":[]}`, rec.Body.String())
}

func TestBoom(t *testing.T) {
	rec := do(newRouter(), http.MethodGet, "/api/v1/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"title":"Server Error","message":"Please contact developer.","errors":["boom: simulated failure"]}`,
		rec.Body.String(),
	)
}

func TestCode(t *testing.T) {
	r := newRouter()

	rec := do(r, http.MethodGet, "/api/v1/codes/418", "")
	assert.JSONEq(t,
		`{"code":418,"class":"client_error","is_error_code":true,"resolves_to":418,"success_status":200}`,
		rec.Body.String(),
	)

	rec = do(r, http.MethodGet, "/api/v1/codes/204", "")
	assert.JSONEq(t,
		`{"code":204,"class":"success","is_error_code":false,"resolves_to":400,"success_status":204}`,
		rec.Body.String(),
	)

	rec = do(r, http.MethodGet, "/api/v1/codes/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status code must be an integer.", testkit.DictResponseData(t, rec)["message"])
}
