package users

import (
	"context"

	"codeberg.org/algorave/viewkit/api/rest/pagination"
	"codeberg.org/algorave/viewkit/internal/users"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Store is what the user endpoints read from, *users.Repository implements it
type Store interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
	ListActive(ctx context.Context) ([]users.User, error)
}

// list payload, total counts every match, records holds the requested page
type ListResponse struct {
	pagination.Meta
	Records []users.User `json:"records"`
}
