package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// Error Handling Guidelines:
//
// For HTTP handlers wrapped with view.Wrap:
//   - Return the error from h.RaiseError() to abort with a user-safe message
//   - Return any other error to produce a 500 server error response
//   - Do not log the error yourself, the view layer logs and responds once
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

const (
	DefaultTitle   = "Error"
	DefaultMessage = "Unable to process request."
	DefaultStatus  = 400

	ServerErrorTitle   = "Server Error"
	ServerErrorMessage = "Please contact developer."
	ServerErrorStatus  = 500
)

// DefaultPayload returns a fresh fallback payload on every call
func DefaultPayload() ErrorPayload {
	return ErrorPayload{
		Title:   DefaultTitle,
		Message: DefaultMessage,
		Errors:  nil,
	}
}

// NewHumanReadable creates a human readable error carrying a stack trace
func NewHumanReadable(title, message string, status int, errs []string) error {
	return pkgerrors.WithStack(&HumanReadableError{
		Title:   title,
		Message: message,
		Status:  status,
		Errors:  errs,
	})
}

// Readable is a shorthand for a human readable error with only a message
func Readable(message string) error {
	return NewHumanReadable(DefaultTitle, message, DefaultStatus, nil)
}

// reports whether err (or anything it wraps) is a HumanReadableError
func IsHumanReadable(err error) bool {
	_, ok := AsHumanReadable(err)
	return ok
}

// returns the HumanReadableError wrapped by err, if any
func AsHumanReadable(err error) (*HumanReadableError, bool) {
	if err == nil {
		return nil, false
	}

	var hre *HumanReadableError
	if stderrors.As(err, &hre) && hre != nil {
		return hre, true
	}

	return nil, false
}

// Validate reports whether candidate is a mapping with string title and message.
// Struct payloads with an empty title or message count as missing fields.
func Validate(candidate any) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	switch p := candidate.(type) {
	case ErrorPayload:
		return p.Title != "" && p.Message != ""
	case *ErrorPayload:
		return p != nil && p.Title != "" && p.Message != ""
	case map[string]any:
		return hasStringKeys(p)
	case gin.H:
		return hasStringKeys(p)
	case map[string]string:
		_, hasTitle := p["title"]
		_, hasMessage := p["message"]
		return hasTitle && hasMessage
	default:
		return false
	}
}

func hasStringKeys(m map[string]any) bool {
	if m == nil {
		return false
	}

	_, titleOK := m["title"].(string)
	_, messageOK := m["message"].(string)

	return titleOK && messageOK
}

// ResolvePayload picks the payload for an error response. A valid candidate
// is used as is, anything else falls back to DefaultPayload. A human readable
// err overwrites the message. Never panics.
func ResolvePayload(err error, candidate any) (payload ErrorPayload) {
	defer func() {
		if recover() != nil {
			payload = DefaultPayload()
		}
	}()

	if Validate(candidate) {
		payload = toPayload(candidate)
	} else {
		payload = DefaultPayload()
	}

	if hre, ok := AsHumanReadable(err); ok {
		payload.Message = hre.Message
	}

	return payload
}

// converts a validated candidate into an ErrorPayload
func toPayload(candidate any) ErrorPayload {
	switch p := candidate.(type) {
	case ErrorPayload:
		return ErrorPayload{Title: p.Title, Message: p.Message, Errors: p.Errors}
	case *ErrorPayload:
		return ErrorPayload{Title: p.Title, Message: p.Message, Errors: p.Errors}
	case map[string]any:
		return mapToPayload(p)
	case gin.H:
		return mapToPayload(p)
	case map[string]string:
		return ErrorPayload{Title: p["title"], Message: p["message"]}
	}

	return DefaultPayload()
}

func mapToPayload(m map[string]any) ErrorPayload {
	return ErrorPayload{
		Title:   m["title"].(string),
		Message: m["message"].(string),
		Errors:  toErrorList(m["errors"]),
	}
}

// normalizes the loose "errors" value of a mapping payload
func toErrorList(v any) []string {
	switch errs := v.(type) {
	case nil:
		return nil
	case []string:
		return errs
	case string:
		return []string{errs}
	case error:
		return []string{errs.Error()}
	case []any:
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, fmt.Sprint(e))
		}
		return out
	default:
		return []string{fmt.Sprint(errs)}
	}
}

// Classify returns the class of an HTTP status code
func Classify(code int) StatusClass {
	switch {
	case code >= 100 && code <= 199:
		return ClassInformational
	case code >= 200 && code <= 299:
		return ClassSuccess
	case code >= 300 && code <= 399:
		return ClassRedirection
	case code >= 400 && code <= 499:
		return ClassClientError
	case code >= 500 && code <= 599:
		return ClassServerError
	default:
		return ClassUnknown
	}
}

func IsSuccess(code int) bool {
	return Classify(code) == ClassSuccess
}

func IsClientError(code int) bool {
	return Classify(code) == ClassClientError
}

func IsServerError(code int) bool {
	return Classify(code) == ClassServerError
}

// reports whether code may be used as an error response status
func IsValidErrorCode(code int) bool {
	return IsClientError(code) || IsServerError(code)
}
