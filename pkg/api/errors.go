// Error handling utilities for the catalog API.
// Full errors are logged server-side; clients receive generic messages.

package api

import "log/slog"

// Safe error messages for client responses.
const (
	// ErrMsgInternalError is returned for unexpected internal errors.
	ErrMsgInternalError = "An internal error occurred"

	// ErrMsgInvalidJSON is returned for JSON parsing errors.
	ErrMsgInvalidJSON = "Invalid JSON in request body"

	// ErrMsgNotFound is returned when no comic has the requested identifier.
	ErrMsgNotFound = "Comic not found"
)

// sanitizeError logs the full error server-side and returns a generic
// message safe for the client.
func sanitizeError(err error, log *slog.Logger, operation string, details ...any) string {
	if log != nil {
		args := []any{"operation", operation, "error", err}
		args = append(args, details...)
		log.Error("operation failed", args...)
	}
	return ErrMsgInternalError
}

// sanitizeJSONError logs a body-parsing failure and returns a generic
// message.
func sanitizeJSONError(err error, log *slog.Logger) string {
	if log != nil {
		log.Debug("JSON parsing failed", "error", err)
	}
	return ErrMsgInvalidJSON
}
