package calc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern is the accepted operand syntax once surrounding whitespace is trimmed:
// an optional sign, digits with an optional fraction (or a bare fraction),
// and an optional exponent.
var decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Operands is a pair of coerced operands.
type Operands struct {
	X float64
	Y float64
}

// ParseOperand coerces text into a finite float64.
//
// Leading and trailing whitespace is ignored. Empty text, non-decimal
// literals (hex, binary, digit separators), Inf/NaN spellings and values
// that overflow float64 all fail with ErrInvalidOperand.
func ParseOperand(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if !decimalPattern.MatchString(trimmed) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidOperand, s)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// ParseFloat only fails here on range errors, where it yields ±Inf.
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidOperand, s, err)
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidOperand, s)
	}

	return v, nil
}

// ParseOperands coerces both operands. The returned error names the first
// operand that failed.
func ParseOperands(a, b string) (Operands, error) {
	x, err := ParseOperand(a)
	if err != nil {
		return Operands{}, fmt.Errorf("operand a: %w", err)
	}

	y, err := ParseOperand(b)
	if err != nil {
		return Operands{}, fmt.Errorf("operand b: %w", err)
	}

	return Operands{X: x, Y: y}, nil
}
