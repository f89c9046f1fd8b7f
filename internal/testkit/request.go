package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"codeberg.org/algorave/viewkit/internal/auth"
	"codeberg.org/algorave/viewkit/internal/terminal"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

// RequestFactory builds gin contexts for calling handlers directly
type RequestFactory struct {
	Headers map[string]string

	// optional, attaches a session to every request
	Store sessions.Store
}

func NewRequestFactory() *RequestFactory {
	return &RequestFactory{Headers: map[string]string{}}
}

// NewContext returns a test context for method and target. body may be
// nil, an io.Reader, a string, []byte, or a value encoded as JSON.
func (f *RequestFactory) NewContext(t require.TestingT, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	reader, isJSON := requestBody(t, body)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, reader)

	if isJSON {
		c.Request.Header.Set("Content-Type", "application/json")
	}

	for k, v := range f.Headers {
		c.Request.Header.Set(k, v)
	}

	if f.Store != nil {
		c.Set(SessionName, AddSession(t, c.Request, f.Store))
	}

	return c, rec
}

// SetUser authenticates the request as userID without a token
func SetUser(c *gin.Context, userID string) {
	auth.SetUser(c, userID, "")
}

// Session returns the session attached by the factory, if any
func Session(c *gin.Context) (*sessions.Session, bool) {
	s, ok := c.Get(SessionName)
	if !ok {
		return nil, false
	}

	session, ok := s.(*sessions.Session)
	return session, ok
}

func requestBody(t require.TestingT, body any) (io.Reader, bool) {
	switch b := body.(type) {
	case nil:
		return nil, false
	case io.Reader:
		return b, false
	case string:
		return bytes.NewBufferString(b), false
	case []byte:
		return bytes.NewReader(b), false
	}

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	return bytes.NewReader(encoded), true
}

// Printer returns a terminal printer that writes to the test log
func Printer(t testing.TB) *terminal.Printer {
	return terminal.NewPrinter(logWriter{t})
}

type logWriter struct {
	t testing.TB
}

func (w logWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))

	return len(p), nil
}
