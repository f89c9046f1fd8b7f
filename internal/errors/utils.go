package errors

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ClassifyError analyzes an error and returns its category and a message
// safe to expose. With redact unset the sanitized message is err.Error().
func ClassifyError(err error, redact bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	// human readable errors are already safe
	if hre, ok := AsHumanReadable(err); ok {
		return ErrorInfo{CategoryValidation, hre.Message}
	}

	info := func(category Category, redacted string) ErrorInfo {
		return ErrorInfo{
			Category:  category,
			Sanitized: ternary(redact, redacted, err.Error()),
		}
	}

	// database errors (pgx-specific)
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return info(CategoryDatabase, "database operation failed")
	}

	// no rows found
	if stderrors.Is(err, pgx.ErrNoRows) {
		return info(CategoryNotFound, "resource not found")
	}

	// context errors
	if stderrors.Is(err, context.DeadlineExceeded) {
		return info(CategoryTimeout, "request timed out")
	}

	if stderrors.Is(err, context.Canceled) {
		return info(CategoryTimeout, "request canceled")
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	switch {
	case containsAny(errMsg, "timeout", "deadline"):
		return info(CategoryTimeout, "request timed out")
	case containsAny(errMsg, "not found", "no rows"):
		return info(CategoryNotFound, "resource not found")
	case containsAny(errMsg, "database", "sql", "postgres", "pgx"):
		return info(CategoryDatabase, "database operation failed")
	case containsAny(errMsg, "connection", "network", "dial"):
		return info(CategoryNetwork, "connection error occurred")
	case containsAny(errMsg, "validation", "binding", "invalid", "required"):
		return info(CategoryValidation, "validation failed")
	case containsAny(errMsg, "unauthorized", "forbidden", "permission", "auth"):
		return info(CategoryAuth, "permission denied")
	}

	return info(CategoryUnknown, "an error occurred")
}

// Sanitize returns the message of err that may be placed in a response
func Sanitize(err error, redact bool) string {
	return ClassifyError(err, redact).Sanitized
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}

	return false
}

// ternary helper for cleaner conditional assignment
func ternary(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}

	return falseVal
}
