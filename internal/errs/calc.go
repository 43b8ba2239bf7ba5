package errs

import (
	"errors"

	"github.com/deppfellow/adder/internal/calc"
)

// FromCalc maps an error from the calc package (or a service wrapping it)
// to the HTTPError every transport answers with. Unknown errors become a
// generic 500.
func FromCalc(err error) *HTTPError {
	if errors.Is(err, calc.ErrInvalidOperand) {
		return NewInvalidOperandError()
	}
	return NewInternalServerError()
}
