package view

import (
	"fmt"
	"net/http"

	"codeberg.org/algorave/viewkit/internal/errors"
	"codeberg.org/algorave/viewkit/internal/logger"
	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// HandlerFunc is an API handler that returns a response or an error
type HandlerFunc func(c *gin.Context, h *Handler) (*Response, error)

// Factory builds Handlers with shared options, one per request
type Factory struct {
	Options Options
}

// creates a factory, handlers it creates share opts
func NewFactory(opts Options) *Factory {
	return &Factory{Options: opts}
}

// returns a fresh Handler
func (f *Factory) New() *Handler {
	return New(f.Options)
}

// Wrap adapts fn into a gin handler. Each request gets a fresh Handler.
// Human readable errors become error responses built from their payload,
// any other error or panic becomes a 500 server error response.
func (f *Factory) Wrap(fn HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := f.New()

		resp, err := call(fn, c, h)

		if err != nil {
			resp = f.errorResponse(c, h, err)
		}

		if resp != nil {
			resp.Render(c)
			return
		}

		if !c.Writer.Written() {
			c.Status(http.StatusNoContent)
		}
	}
}

// Wrap with default options
func Wrap(fn HandlerFunc) gin.HandlerFunc {
	return NewFactory(Options{}).Wrap(fn)
}

// runs fn, turning a panic into an error
func call(fn HandlerFunc, c *gin.Context, h *Handler) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = pkgerrors.WithStack(fmt.Errorf("panic: %v", r))
		}
	}()

	return fn(c, h)
}

func (f *Factory) errorResponse(c *gin.Context, h *Handler, err error) *Response {
	if hre, ok := errors.AsHumanReadable(err); ok {
		resp := h.ErrorResponse(err, hre.Payload(), hre.Status, "")

		logger.Debug("request aborted",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"status", resp.Status,
			"message", hre.Message,
		)

		return resp
	}

	// log full error server-side with context
	logger.ErrorErr(err, "request failed",
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
		"category", errors.ClassifyError(err, false).Category,
	)

	return h.ServerError(err)
}

// AbortWith renders an error response for middleware and stops the chain
func (f *Factory) AbortWith(c *gin.Context, title, message string, status int) {
	h := f.New()
	err := h.RaiseError(title, message, status, nil)

	h.ErrorResponse(err, h.Payload(), status, "").Render(c)
	c.Abort()
}

// AbortWith using default options
func AbortWith(c *gin.Context, title, message string, status int) {
	NewFactory(Options{}).AbortWith(c, title, message, status)
}
