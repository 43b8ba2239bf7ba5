package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/adder/internal/calc"
)

func TestAddService(t *testing.T) {
	svc := NewAddService()
	ctx := context.Background()

	tests := []struct {
		a, b string
		want float64
	}{
		{"2", "3", 5},
		{"2.5", "0.5", 3},
		{"-4", "10", 6},
		{" 1e2 ", "-0.5", 99.5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"+"+tt.b, func(t *testing.T) {
			got, err := svc.Add(ctx, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, Sum{Result: tt.want}, got)

			// Repeated calls give identical output.
			again, err := svc.Add(ctx, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, got, again)

			swapped, err := svc.Add(ctx, tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, swapped)
		})
	}
}

func TestAddServiceInvalidOperands(t *testing.T) {
	svc := NewAddService()

	for _, pair := range [][2]string{{"abc", "3"}, {"3", ""}, {"1,2", "1"}, {"", ""}} {
		_, err := svc.Add(context.Background(), pair[0], pair[1])
		assert.ErrorIs(t, err, calc.ErrInvalidOperand, "%q + %q", pair[0], pair[1])
	}
}

func TestAddServiceOverflow(t *testing.T) {
	maxValue := strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64)

	got, err := NewAddService().Add(context.Background(), maxValue, maxValue)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Result, 1))

	got, err = NewAddService().Add(context.Background(), "-"+maxValue, "-"+maxValue)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Result, -1))
}

func TestSumMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		sum  Sum
		want string
	}{
		{name: "integer", sum: Sum{Result: 5}, want: `{"result":5}`},
		{name: "fraction", sum: Sum{Result: 0.1 + 0.2}, want: `{"result":0.30000000000000004}`},
		{name: "positive overflow", sum: Sum{Result: math.Inf(1)}, want: `{"result":null}`},
		{name: "negative overflow", sum: Sum{Result: math.Inf(-1)}, want: `{"result":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.sum)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}
