package users

import (
	"net/http"

	"codeberg.org/algorave/viewkit/api/rest/pagination"
	"codeberg.org/algorave/viewkit/internal/request"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
)

// returns the authenticated user
func GetMe(store Store) view.HandlerFunc {
	return func(c *gin.Context, h *view.Handler) (*view.Response, error) {
		if store == nil {
			return nil, unavailable(h)
		}

		user, err := request.UserInstance(c, store)
		if err != nil {
			return nil, err
		}

		return h.Ok(user), nil
	}
}

// lists active users as {"total": n, "records": [...]} plus paging fields
func ListActive(store Store) view.HandlerFunc {
	return func(c *gin.Context, h *view.Handler) (*view.Response, error) {
		if store == nil {
			return nil, unavailable(h)
		}

		params, err := pagination.FromQuery(c, defaultPageSize, maxPageSize)
		if err != nil {
			return nil, h.RaiseError("Validation Error", "Invalid pagination parameters.", http.StatusBadRequest, []string{err.Error()})
		}

		records, err := store.ListActive(c.Request.Context())
		if err != nil {
			return nil, err
		}

		return h.Ok(ListResponse{
			Meta:    pagination.NewMeta(params, len(records)),
			Records: pagination.Page(records, params),
		}), nil
	}
}

func unavailable(h *view.Handler) error {
	return h.RaiseError(
		"Service Unavailable",
		"User storage is not configured.",
		http.StatusServiceUnavailable,
		[]string{"DATABASE_URL is not set"},
	)
}
