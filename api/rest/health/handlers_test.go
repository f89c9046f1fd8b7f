package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", handler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		database string
	}{
		{"no database", nil, "disabled"},
		{"reachable", pingerFunc(func(context.Context) error { return nil }), "ok"},
		{"unreachable", pingerFunc(func(context.Context) error { return errors.New("down") }), "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(view.Wrap(Handler(tt.db)))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t,
				`{"status":"healthy","service":"viewkit","version":"1.0.0","database":"`+tt.database+`"}`,
				rec.Body.String(),
			)
		})
	}
}

func TestPingHandler(t *testing.T) {
	rec := serve(view.Wrap(PingHandler))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}
