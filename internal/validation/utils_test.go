package validation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/adder/internal/errs"
)

type pairRequest struct {
	A string `param:"a" query:"a" validate:"required,operand"`
	B string `param:"b" query:"b" validate:"required,operand"`
}

func (r *pairRequest) Validate() error {
	return Struct(r)
}

type fixedErrorRequest struct{}

func (r *fixedErrorRequest) Validate() error {
	return errs.NewInvalidOperandError()
}

type customErrorRequest struct{}

func (r *customErrorRequest) Validate() error {
	return CustomValidationErrors{{Field: "a", Message: "looks odd"}}
}

func newContext(target string, names, values []string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if names != nil {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c
}

func TestBindAndValidatePathParams(t *testing.T) {
	c := newContext("/api/add/2/3", []string{"a", "b"}, []string{"2", "3"})

	req := &pairRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "2", req.A)
	assert.Equal(t, "3", req.B)
}

func TestBindAndValidateQueryParams(t *testing.T) {
	c := newContext("/api/add?a=1.5&b=-2", nil, nil)

	req := &pairRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "1.5", req.A)
	assert.Equal(t, "-2", req.B)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext("/api/add?a=abc", nil, nil)

	err := BindAndValidate(c, &pairRequest{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "a", Error: "must be a number"},
		{Field: "b", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidateKeepsHTTPError(t *testing.T) {
	c := newContext("/", nil, nil)

	err := BindAndValidate(c, &fixedErrorRequest{})
	require.Error(t, err)
	assert.Equal(t, errs.MessageInvalidNumbers, err.Error())
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext("/", nil, nil)

	err := BindAndValidate(c, &customErrorRequest{})
	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, []errs.FieldError{{Field: "a", Error: "looks odd"}}, httpErr.Errors)
}
