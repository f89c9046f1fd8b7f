package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"codeberg.org/algorave/viewkit/internal/config"
	"codeberg.org/algorave/viewkit/internal/debug"
	"codeberg.org/algorave/viewkit/internal/logger"
	"codeberg.org/algorave/viewkit/internal/users"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	logger.SetDebug(cfg.Debug)

	if cfg.IsProduction() && !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		config: cfg,
		views: view.NewFactory(view.Options{
			Debugger: debug.New(os.Stderr, cfg.DebugMultiline, cfg.BaseDir),
			Redact:   cfg.IsProduction() && !cfg.Debug,
		}),
	}

	if cfg.DatabaseURL != "" {
		db, err := connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		server.db = db
		server.userRepo = users.NewRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set, user endpoints will answer 503")
	}

	router := gin.Default()

	if err := RegisterRoutes(router, server); err != nil {
		server.Close()
		return nil, err
	}

	server.router = router

	return server, nil
}

func connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// releases the database pool, if any
func (s *Server) Close() {
	if s.db != nil {
		s.db.Close()
	}
}
