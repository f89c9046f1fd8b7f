package main

import (
	"codeberg.org/algorave/viewkit/internal/config"
	"codeberg.org/algorave/viewkit/internal/users"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	userRepo *users.Repository
	views    *view.Factory
	router   *gin.Engine
}
