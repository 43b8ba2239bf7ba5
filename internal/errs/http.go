// Package errs defines the error types the HTTP layer understands.
//
// Handlers and services return *HTTPError (or wrap one); the global error
// handler in the middleware package turns it into a consistent JSON body:
//
//	{ "error": "Invalid numbers" }
//
// Field-level details are only included when present.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "a", "error": "must be a number" }
type FieldError struct {
	// Field is the request field the error relates to (e.g. "a").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type carried from handlers to the global error handler.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), used in logs.
//   - Message: human-friendly message, sent to the client.
//   - Status: HTTP status code.
//   - Override: when true the message is safe to show as-is even for 5xx.
//   - Errors: optional per-field errors.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Response converts the error into the body sent to clients.
func (e *HTTPError) Response() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Errors: e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
