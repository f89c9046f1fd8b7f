package demo

import (
	"net/http"
	"strconv"

	"codeberg.org/algorave/viewkit/internal/errors"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// echoes the message back, optionally with a success status of the caller's choosing
func Echo(c *gin.Context, h *view.Handler) (*view.Response, error) {
	var req EchoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, h.RaiseError(
			"Validation Error",
			"Invalid request body.",
			http.StatusUnprocessableEntity,
			[]string{errors.Sanitize(err, false)},
		)
	}

	status := req.Status
	if status == 0 {
		status = http.StatusOK
	}

	return h.SuccessResponse(EchoResponse{
		Message:   req.Message,
		RequestID: c.GetString("request_id"),
	}, status, ""), nil
}

// always fails with the testing stopper error
func Stopper(_ *gin.Context, h *view.Handler) (*view.Response, error) {
	return nil, h.Stopper()
}

// fails with an unexpected error
func Boom(_ *gin.Context, _ *view.Handler) (*view.Response, error) {
	return nil, pkgerrors.New("boom: simulated failure")
}

// reports how the view layer treats the status code in the path
func Code(c *gin.Context, h *view.Handler) (*view.Response, error) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return nil, h.Abort("Status code must be an integer.")
	}

	return h.Ok(CodeResponse{
		Code:          code,
		Class:         errors.Classify(code).String(),
		IsErrorCode:   errors.IsValidErrorCode(code),
		ResolvesTo:    view.New(view.Options{}).ResolveStatus(code),
		SuccessStatus: view.New(view.Options{}).SuccessResponse(nil, code, "").Status,
	}), nil
}
