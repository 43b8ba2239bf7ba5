package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/adder/internal/errs"
	"github.com/deppfellow/adder/internal/server"
	"github.com/deppfellow/adder/internal/service"
	"github.com/deppfellow/adder/internal/validation"
)

// AddPathRequest carries the operands of /api/add/:a/:b. Only path
// segments are bound, so a same-named query parameter cannot replace them.
type AddPathRequest struct {
	A string `param:"a" validate:"required,operand"`
	B string `param:"b" validate:"required,operand"`
}

// Validate rejects missing and malformed operands alike with the fixed
// "Invalid numbers" error.
func (r *AddPathRequest) Validate() error {
	return validateOperands(r)
}

// AddQueryRequest carries the operands of /api/add?a=..&b=..
type AddQueryRequest struct {
	A string `query:"a" validate:"required,operand"`
	B string `query:"b" validate:"required,operand"`
}

func (r *AddQueryRequest) Validate() error {
	return validateOperands(r)
}

func validateOperands(r interface{}) error {
	if err := validation.Struct(r); err != nil {
		return errs.NewInvalidOperandError()
	}
	return nil
}

// AddHandler serves the add operation.
type AddHandler struct {
	Handler
	addService *service.AddService
}

// NewAddHandler constructs an AddHandler.
func NewAddHandler(s *server.Server, addService *service.AddService) *AddHandler {
	return &AddHandler{
		Handler:    NewHandler(s),
		addService: addService,
	}
}

// AddPath returns the echo handler for GET /api/add/:a/:b.
func (h *AddHandler) AddPath() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *AddPathRequest) (service.Sum, error) {
		return h.add(c, req.A, req.B)
	}, http.StatusOK, func() *AddPathRequest { return &AddPathRequest{} })
}

// AddQuery returns the echo handler for GET /api/add?a=..&b=..
func (h *AddHandler) AddQuery() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *AddQueryRequest) (service.Sum, error) {
		return h.add(c, req.A, req.B)
	}, http.StatusOK, func() *AddQueryRequest { return &AddQueryRequest{} })
}

func (h *AddHandler) add(c echo.Context, a, b string) (service.Sum, error) {
	sum, err := h.addService.Add(c.Request().Context(), a, b)
	if err != nil {
		return service.Sum{}, errs.FromCalc(err)
	}
	return sum, nil
}
