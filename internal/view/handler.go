// Package view standardizes JSON success and error responses for API
// handlers. A Handler carries the error state of a single request: create
// one per request (Wrap does this) and never share it between requests.
package view

import (
	"net/http"

	"codeberg.org/algorave/viewkit/internal/errors"
	"codeberg.org/algorave/viewkit/internal/logger"
)

const DefaultContentType = "application/json"

// ExceptionDebugger prints developer details about an error
type ExceptionDebugger interface {
	DebugException(err error, label, bg string)
}

// Options configure a Handler
type Options struct {
	// content type used when a response does not name one
	ContentType string

	// receives errors when the global debug flag is set, nil disables
	Debugger ExceptionDebugger

	// replace raw error text in server error responses with a generic message
	Redact bool
}

// Handler holds the status and error payload of one in-flight request
type Handler struct {
	status  int
	payload errors.ErrorPayload
	opts    Options
}

// creates a handler with fresh state
func New(opts Options) *Handler {
	if opts.ContentType == "" {
		opts.ContentType = DefaultContentType
	}

	h := &Handler{opts: opts}
	h.Reset()

	return h
}

// restores the initial state: status 200 and the default payload
func (h *Handler) Reset() {
	h.status = http.StatusOK
	h.payload = errors.DefaultPayload()
}

// returns the current status
func (h *Handler) Status() int {
	return h.status
}

// returns a copy of the current error payload
func (h *Handler) Payload() errors.ErrorPayload {
	p := h.payload
	if p.Errors != nil {
		p.Errors = append([]string(nil), p.Errors...)
	}

	return p
}

// returns contentType, or the handler default when empty
func (h *Handler) ContentType(contentType string) string {
	if contentType != "" {
		return contentType
	}

	return h.opts.ContentType
}

// ResolveStatus picks the error status for a response and stores it. A
// status already committed on the handler wins over the requested one.
func (h *Handler) ResolveStatus(requested int) int {
	switch {
	case errors.IsValidErrorCode(h.status):
		// already a valid error code
	case errors.IsValidErrorCode(requested):
		h.status = requested
	default:
		h.status = errors.DefaultStatus
	}

	return h.status
}

// ResolvePayload validates errorData against err and stores the result
func (h *Handler) ResolvePayload(err error, errorData any) errors.ErrorPayload {
	h.payload = errors.ResolvePayload(err, errorData)
	return h.Payload()
}

// SuccessResponse wraps data unchanged; a non 2xx status becomes 200
func (h *Handler) SuccessResponse(data any, status int, contentType string) *Response {
	if !errors.IsSuccess(status) {
		status = http.StatusOK
	}

	return &Response{
		Status:      status,
		ContentType: h.ContentType(contentType),
		Body:        data,
	}
}

// Ok is SuccessResponse with status 200 and the default content type
func (h *Handler) Ok(data any) *Response {
	return h.SuccessResponse(data, http.StatusOK, "")
}

// ErrorResponse builds an error response for err. errorData is the candidate
// payload (nil means none), status 0 means none. Never panics.
func (h *Handler) ErrorResponse(err error, errorData any, status int, contentType string) *Response {
	if logger.DebugEnabled() && h.opts.Debugger != nil {
		h.debug(err)
	}

	payload := h.ResolvePayload(err, errorData)
	status = h.ResolveStatus(status)

	return &Response{
		Status:      status,
		ContentType: h.ContentType(contentType),
		Body:        payload,
	}
}

// ServerErrorResponse reports an unexpected error. errs defaults to the
// error text, redacted when the handler is configured to.
func (h *Handler) ServerErrorResponse(err error, title, message string, status int, errs []string) *Response {
	if len(errs) == 0 {
		errs = []string{h.errorText(err)}
	}

	h.status = status

	return h.ErrorResponse(err, errors.ErrorPayload{
		Title:   title,
		Message: message,
		Errors:  errs,
	}, h.status, "")
}

// ServerError is ServerErrorResponse with the default title, message and status
func (h *Handler) ServerError(err error) *Response {
	return h.ServerErrorResponse(err, errors.ServerErrorTitle, errors.ServerErrorMessage, errors.ServerErrorStatus, nil)
}

// RaiseError records the error state and returns the error that aborts the
// request. The result is never nil and must be returned by the caller.
func (h *Handler) RaiseError(title, message string, status int, errs []string) error {
	if errs == nil {
		errs = []string{}
	}

	h.status = status
	h.payload = errors.ErrorPayload{
		Title:   title,
		Message: message,
		Errors:  errs,
	}

	return errors.NewHumanReadable(title, message, status, errs)
}

// Abort is RaiseError with the default title and status
func (h *Handler) Abort(message string) error {
	return h.RaiseError(errors.DefaultTitle, message, errors.DefaultStatus, nil)
}

// Stopper raises a testing error, handy for exercising error branches
func (h *Handler) Stopper() error {
	return h.RaiseError("Testing", "Stopper", http.StatusBadRequest, nil)
}

func (h *Handler) errorText(err error) string {
	if err == nil {
		return ""
	}

	return errors.Sanitize(err, h.opts.Redact)
}

// debug output must never break the error path
func (h *Handler) debug(err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("debugger failed", "panic", r)
		}
	}()

	h.opts.Debugger.DebugException(err, "", "")
}
