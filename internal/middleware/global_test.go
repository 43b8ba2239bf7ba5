package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/adder/internal/config"
	"github.com/deppfellow/adder/internal/errs"
	"github.com/deppfellow/adder/internal/server"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			ShutdownTimeout:    time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	m := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.ContextEnhancer.EnhanceContext(), m.Global.RequestLogger(), m.Global.Recover())

	e.GET("/http-error", func(c echo.Context) error {
		return errs.NewInvalidOperandError()
	})
	e.GET("/internal", func(c echo.Context) error {
		return errors.New("database password is hunter2")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("unexpected")
	})
	e.GET("/logger", func(c echo.Context) error {
		if GetLogger(c) == nil || zerolog.Ctx(c.Request().Context()) == nil {
			return errors.New("missing logger")
		}
		return c.String(http.StatusOK, GetRequestID(c))
	})

	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestGlobalErrorHandlerHTTPError(t *testing.T) {
	rec := serve(newTestEcho(t), http.MethodGet, "/http-error")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid numbers"}`, rec.Body.String())
}

func TestGlobalErrorHandlerHidesInternalErrors(t *testing.T) {
	rec := serve(newTestEcho(t), http.MethodGet, "/internal")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestGlobalErrorHandlerRecoversPanics(t *testing.T) {
	rec := serve(newTestEcho(t), http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestGlobalErrorHandlerHeadHasNoBody(t *testing.T) {
	rec := serve(newTestEcho(t), http.MethodHead, "/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestContextLoggerAndRequestID(t *testing.T) {
	rec := serve(newTestEcho(t), http.MethodGet, "/logger")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(echo.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFromError(errs.NewInvalidOperandError()))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("x")))
}
