package users

import "codeberg.org/algorave/viewkit/internal/queryset"

var userColumns = []string{"id", "email", "name", "is_active", "created_at", "updated_at"}

// active users, oldest first
var activeUsers = queryset.ActiveQuerySet{
	Table:   "users",
	Columns: userColumns,
	OrderBy: "created_at",
}

const queryFindByID = `
	SELECT id, email, name, is_active, created_at, updated_at
	FROM users
	WHERE id = $1
`

const queryFindOrCreateByEmail = `
	INSERT INTO users (id, email, name, is_active)
	VALUES ($1, $2, $3, TRUE)
	ON CONFLICT (email)
	DO UPDATE SET
		name = EXCLUDED.name,
		updated_at = NOW()
	RETURNING id, email, name, is_active, created_at, updated_at
`
