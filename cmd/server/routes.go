package main

import (
	"fmt"

	"codeberg.org/algorave/viewkit/api/rest/demo"
	"codeberg.org/algorave/viewkit/api/rest/health"
	"codeberg.org/algorave/viewkit/api/rest/users"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	rateLimit, err := RateLimitMiddleware(server.views, server.config.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT %q: %w", server.config.RateLimit, err)
	}

	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())

	var (
		pinger health.Pinger
		store  users.Store
	)

	// typed nils must not reach the handlers
	if server.db != nil {
		pinger = server.db
	}

	if server.userRepo != nil {
		store = server.userRepo
	}

	router.GET("/health", server.views.Wrap(health.Handler(pinger)))

	v1 := router.Group("/api/v1")
	v1.Use(rateLimit)

	{
		v1.GET("/ping", server.views.Wrap(health.PingHandler))

		demo.RegisterRoutes(v1, server.views)
		users.RegisterRoutes(v1, server.views, store)
	}

	return nil
}
