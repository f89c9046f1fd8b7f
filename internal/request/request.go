// Package request reads the authenticated user of a gin request.
package request

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"codeberg.org/algorave/viewkit/internal/auth"
	"codeberg.org/algorave/viewkit/internal/errors"
	"codeberg.org/algorave/viewkit/internal/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// UserFinder loads users by id, *users.Repository implements it
type UserFinder interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
}

// UserID returns the id set by the auth middleware. Anonymous requests get
// a human readable 401 error.
func UserID(c *gin.Context) (string, error) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return "", errors.NewHumanReadable("Unauthorized", "Authentication required.", http.StatusUnauthorized, nil)
	}

	return userID, nil
}

// UserInstance loads the authenticated user. A user that no longer exists
// yields a human readable 404 error, other failures are returned wrapped.
func UserInstance(c *gin.Context, finder UserFinder) (*users.User, error) {
	userID, err := UserID(c)
	if err != nil {
		return nil, err
	}

	user, err := finder.FindByID(c.Request.Context(), userID)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, errors.NewHumanReadable("Not Found", "User does not exist.", http.StatusNotFound, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}

	return user, nil
}
