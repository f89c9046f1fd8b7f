package demo

import (
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, f *view.Factory) {
	rg.POST("/echo", f.Wrap(Echo))
	rg.GET("/stopper", f.Wrap(Stopper))
	rg.GET("/boom", f.Wrap(Boom))
	rg.GET("/codes/:code", f.Wrap(Code))
}
