package health

import (
	"context"

	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
)

const (
	serviceName = "viewkit"
	version     = "1.0.0"
)

// Pinger reports database reachability, *pgxpool.Pool implements it
type Pinger interface {
	Ping(ctx context.Context) error
}

// returns the server health status, db may be nil
func Handler(db Pinger) view.HandlerFunc {
	return func(c *gin.Context, h *view.Handler) (*view.Response, error) {
		resp := Response{
			Status:   "healthy",
			Service:  serviceName,
			Version:  version,
			Database: "disabled",
		}

		if db != nil {
			resp.Database = "ok"
			if err := db.Ping(c.Request.Context()); err != nil {
				resp.Database = "unreachable"
			}
		}

		return h.Ok(resp), nil
	}
}

// responds with pong for testing
func PingHandler(_ *gin.Context, h *view.Handler) (*view.Response, error) {
	return h.Ok(PingResponse{Message: "pong"}), nil
}
