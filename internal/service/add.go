package service

import (
	"context"
	"encoding/json"
	"math"

	"github.com/rs/zerolog"

	"github.com/deppfellow/adder/internal/calc"
)

// Sum is the result of a successful addition.
type Sum struct {
	Result float64 `json:"result"`
}

// MarshalJSON encodes a sum that overflowed to ±Inf as {"result":null},
// since JSON has no representation for infinity.
func (s Sum) MarshalJSON() ([]byte, error) {
	if math.IsInf(s.Result, 0) || math.IsNaN(s.Result) {
		return []byte(`{"result":null}`), nil
	}

	type sum Sum
	return json.Marshal(sum(s))
}

// AddService adds two textual operands. It holds no state and is safe
// for concurrent use.
type AddService struct{}

// NewAddService constructs an AddService.
func NewAddService() *AddService {
	return &AddService{}
}

// Add coerces a and b and returns their sum.
//
// The error wraps calc.ErrInvalidOperand when either operand is not a
// finite decimal number. A sum that overflows is not an error.
func (s *AddService) Add(ctx context.Context, a, b string) (Sum, error) {
	logger := zerolog.Ctx(ctx)

	operands, err := calc.ParseOperands(a, b)
	if err != nil {
		logger.Debug().Err(err).Msg("operand coercion failed")
		return Sum{}, err
	}

	result := operands.Sum()

	logger.Debug().
		Float64("x", operands.X).
		Float64("y", operands.Y).
		Float64("result", result).
		Bool("overflow", math.IsInf(result, 0)).
		Msg("operands added")

	return Sum{Result: result}, nil
}
