package users

import (
	"context"

	"codeberg.org/algorave/viewkit/internal/queryset"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// creates a new user repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// finds a user by their ID, pgx.ErrNoRows when absent
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

// finds a user by email or creates an active one, the name is refreshed either way
func (r *Repository) FindOrCreateByEmail(ctx context.Context, email, name string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryFindOrCreateByEmail, uuid.NewString(), email, name))
}

// lists users flagged active
func (r *Repository) ListActive(ctx context.Context) ([]User, error) {
	return queryset.Actives[User](ctx, r.db, activeUsers)
}

func scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
