package testkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StringResponse returns the recorded body as a string
func StringResponse(rec *httptest.ResponseRecorder) string {
	return rec.Body.String()
}

// JSONResponseData decodes the recorded body, failing the test on bad JSON
func JSONResponseData(t require.TestingT, rec *httptest.ResponseRecorder) any {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	var data any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data), "response body is not JSON: %s", rec.Body.String())

	return data
}

// DictResponseData decodes a JSON object body
func DictResponseData(t require.TestingT, rec *httptest.ResponseRecorder) map[string]any {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	data := JSONResponseData(t, rec)

	m, ok := data.(map[string]any)
	require.Truef(t, ok, "response body is not a JSON object but a %T", data)

	return m
}

// ListResponseData decodes a JSON array body
func ListResponseData(t require.TestingT, rec *httptest.ResponseRecorder) []any {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	data := JSONResponseData(t, rec)

	l, ok := data.([]any)
	require.Truef(t, ok, "response body is not a JSON array but a %T", data)

	return l
}

// AssertRedirect asserts a 302 response pointing at url
func AssertRedirect(t assert.TestingT, rec *httptest.ResponseRecorder, url string) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	return assert.Equal(t, http.StatusFound, rec.Code, "expected a redirect") &&
		assert.Equal(t, url, rec.Header().Get("Location"))
}

// AssertListView checks a listing body shaped {"total": n, "records": [...]}
// against expected. Records are compared ignoring order.
func AssertListView(t require.TestingT, rec *httptest.ResponseRecorder, expected any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	got := DictResponseData(t, rec)
	want := normalize(t, expected)

	return assert.Equal(t, want["total"], got["total"], "total differs") &&
		AssertListsEqual(t, want["records"], got["records"])
}

// round trips v through JSON so it compares equal to decoded bodies
func normalize(t require.TestingT, v any) map[string]any {
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	return m
}
