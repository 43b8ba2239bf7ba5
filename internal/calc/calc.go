// Package calc holds the arithmetic core of the service.
//
// It turns untrusted operand text into numbers and adds them.
// Nothing here knows about HTTP, logging or configuration, so the
// same code backs the HTTP server, the Lambda function and the
// Vercel function.
package calc

import "errors"

// ErrInvalidOperand is returned when an operand does not coerce to a finite number.
var ErrInvalidOperand = errors.New("invalid operand")
