package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/algorave/viewkit/internal/auth"
	"codeberg.org/algorave/viewkit/internal/config"
	"codeberg.org/algorave/viewkit/internal/management"
	"codeberg.org/algorave/viewkit/internal/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

// prints a JWT for a test user. Without -user the user is found or created
// by email in DATABASE_URL.
func issueToken(cmd *management.Command, flags config.Flags) error {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		return err
	}

	userID := flags.UserID

	if userID == "" {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL not set, pass -user to sign an id directly")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		user, err := users.NewRepository(db).FindOrCreateByEmail(ctx, flags.Email, flags.Name)
		if err != nil {
			return fmt.Errorf("failed to find or create test user: %w", err)
		}

		cmd.Write(cmd.Style.Success(fmt.Sprintf("Using test user %s (ID: %s)", user.Email, user.ID)))
		userID = user.ID
	}

	token, err := auth.GenerateJWT(userID, flags.Email)
	if err != nil {
		return err
	}

	cmd.Write(cmd.Style.HTTPInfo("Test JWT token:"))
	cmd.Write(token)
	cmd.Write(fmt.Sprintf("\nexport TEST_TOKEN=%q", token))

	return nil
}
