package errors

import (
	"fmt"
	"strings"
)

// ErrorPayload is the JSON body of every error response
type ErrorPayload struct {
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// HumanReadableError aborts request handling with a message that is safe to
// show to the end user. Title, Status and Errors travel with it so the view
// layer can render the response without extra state.
type HumanReadableError struct {
	Title   string
	Message string
	Status  int
	Errors  []string
}

func (e *HumanReadableError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.Message
}

// Payload returns the error as a response body
func (e *HumanReadableError) Payload() ErrorPayload {
	return ErrorPayload{
		Title:   e.Title,
		Message: e.Message,
		Errors:  e.Errors,
	}
}

// StatusClass groups HTTP status codes by their first digit
type StatusClass int

const (
	ClassUnknown StatusClass = iota
	ClassInformational
	ClassSuccess
	ClassRedirection
	ClassClientError
	ClassServerError
)

var statusClassNames = map[StatusClass]string{
	ClassUnknown:       "unknown",
	ClassInformational: "informational",
	ClassSuccess:       "success",
	ClassRedirection:   "redirection",
	ClassClientError:   "client_error",
	ClassServerError:   "server_error",
}

func (c StatusClass) String() string {
	if name, ok := statusClassNames[c]; ok {
		return name
	}

	return fmt.Sprintf("StatusClass(%d)", int(c))
}

// error categories for classification
type Category string

const (
	CategoryDatabase   Category = "database"
	CategoryNetwork    Category = "network"
	CategoryValidation Category = "validation"
	CategoryAuth       Category = "auth"
	CategoryNotFound   Category = "not_found"
	CategoryTimeout    Category = "timeout"
	CategoryUnknown    Category = "unknown"
)

// ErrorInfo is the result of classifying an error
type ErrorInfo struct {
	Category  Category
	Sanitized string
}

func (i ErrorInfo) String() string {
	return strings.TrimSpace(string(i.Category) + ": " + i.Sanitized)
}
