package users

import (
	"codeberg.org/algorave/viewkit/internal/auth"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
)

// store may be nil, the endpoints then answer 503
func RegisterRoutes(rg *gin.RouterGroup, f *view.Factory, store Store) {
	users := rg.Group("/users")
	users.GET("/active", f.Wrap(ListActive(store)))

	rg.GET("/me", auth.AuthMiddleware(f), f.Wrap(GetMe(store)))
}
