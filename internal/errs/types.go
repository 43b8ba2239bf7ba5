package errs

import (
	"net/http"
)

// Messages that are part of the public API contract.
const (
	MessageInvalidNumbers = "Invalid numbers"
	MessageRouteNotFound  = "Route not found"
)

// CodeInvalidOperand is logged for rejected operands.
const CodeInvalidOperand = "INVALID_OPERAND"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional; when nil it defaults to "BAD_REQUEST".
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text; the real cause only goes to the logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewInvalidOperandError is the single client error of the add operation.
// The message is fixed and never mentions the offending input.
func NewInvalidOperandError() *HTTPError {
	code := CodeInvalidOperand
	return NewBadRequestError(MessageInvalidNumbers, true, &code, nil)
}
