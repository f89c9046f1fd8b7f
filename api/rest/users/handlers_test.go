package users

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"codeberg.org/algorave/viewkit/api/rest/pagination"
	"codeberg.org/algorave/viewkit/internal/testkit"
	"codeberg.org/algorave/viewkit/internal/users"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	users   map[string]*users.User
	active  []users.User
	listErr error
}

func (s *fakeStore) FindByID(_ context.Context, userID string) (*users.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return u, nil
}

func (s *fakeStore) ListActive(context.Context) ([]users.User, error) {
	return s.active, s.listErr
}

func TestListActive(t *testing.T) {
	store := &fakeStore{active: []users.User{
		{ID: "u-1", Email: "a@example.com", IsActive: true},
		{ID: "u-2", Email: "b@example.com", IsActive: true},
	}}

	c, rec := testkit.NewRequestFactory().NewContext(t, http.MethodGet, "/api/v1/users/active", nil)
	view.Wrap(ListActive(store))(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertListView(t, rec, ListResponse{
		Meta:    pagination.Meta{Total: 2},
		Records: []users.User{store.active[1], store.active[0]},
	})
}

func TestListActive_Empty(t *testing.T) {
	c, rec := testkit.NewRequestFactory().NewContext(t, http.MethodGet, "/api/v1/users/active", nil)
	view.Wrap(ListActive(&fakeStore{}))(c)

	assert.JSONEq(t, `{"total":0,"limit":20,"offset":0,"has_more":false,"records":[]}`, rec.Body.String())
}

func TestListActive_Paged(t *testing.T) {
	store := &fakeStore{active: []users.User{{ID: "u-1"}, {ID: "u-2"}, {ID: "u-3"}}}

	c, rec := testkit.NewRequestFactory().NewContext(t, http.MethodGet, "/api/v1/users/active?limit=2&offset=1", nil)
	view.Wrap(ListActive(store))(c)

	data := testkit.DictResponseData(t, rec)
	assert.Equal(t, float64(3), data["total"])
	assert.Equal(t, false, data["has_more"])
	assert.Len(t, data["records"], 2)
}

func TestListActive_BadPagination(t *testing.T) {
	c, rec := testkit.NewRequestFactory().NewContext(t, http.MethodGet, "/api/v1/users/active?offset=x", nil)
	view.Wrap(ListActive(&fakeStore{}))(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"offset must be an integer"}, testkit.DictResponseData(t, rec)["errors"])
}

func TestListActive_StoreFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}

	c, rec := testkit.NewRequestFactory().NewContext(t, http.MethodGet, "/api/v1/users/active", nil)
	view.Wrap(ListActive(store))(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server Error", testkit.DictResponseData(t, rec)["title"])
}

func TestListActive_NoStorage(t *testing.T) {
	c, rec := testkit.NewRequestFactory().NewContext(t, http.MethodGet, "/api/v1/users/active", nil)
	view.Wrap(ListActive(nil))(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t,
		`{"title":"Service Unavailable","message":"User storage is not configured.","errors":["DATABASE_URL is not set"]}`,
		rec.Body.String(),
	)
}

func TestGetMe(t *testing.T) {
	me := &users.User{ID: "u-1", Email: "a@example.com", Name: "Ada"}
	store := &fakeStore{users: map[string]*users.User{"u-1": me}}

	tests := []struct {
		name   string
		userID string
		status int
	}{
		{"authenticated", "u-1", http.StatusOK},
		{"anonymous", "", http.StatusUnauthorized},
		{"deleted account", "u-404", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testkit.NewRequestFactory().NewContext(t, http.MethodGet, "/api/v1/me", nil)
			if tt.userID != "" {
				testkit.SetUser(c, tt.userID)
			}

			view.Wrap(GetMe(store))(c)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "Ada", testkit.DictResponseData(t, rec)["name"])
			}
		})
	}
}
