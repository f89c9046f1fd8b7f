package testkit

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cookie name used by the session helpers
const SessionName = "session"

// NewSessionStore returns a cookie store with a fixed test key
func NewSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("testkit-session-authentication-key"))
}

// AddSession attaches a fresh session from store to r
func AddSession(t require.TestingT, r *http.Request, store sessions.Store) *sessions.Session {
	session, err := store.Get(r, SessionName)
	require.NoError(t, err)

	return session
}

func SetSessionValue(s *sessions.Session, key string, value any) {
	s.Values[key] = value
}

func SetSessionValues(s *sessions.Session, values map[string]any) {
	for k, v := range values {
		s.Values[k] = v
	}
}

// reports whether the session holds no values
func IsSessionEmpty(s *sessions.Session) bool {
	return len(s.Values) == 0
}

func AssertSessionEmpty(t assert.TestingT, s *sessions.Session, msgAndArgs ...any) bool {
	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{"session contains values: %v", s.Values}
	}

	return assert.True(t, IsSessionEmpty(s), msgAndArgs...)
}

func AssertSessionNotEmpty(t assert.TestingT, s *sessions.Session, msgAndArgs ...any) bool {
	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{"session has no values"}
	}

	return assert.False(t, IsSessionEmpty(s), msgAndArgs...)
}
