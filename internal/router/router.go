// Package router builds the echo instance: global middleware, the error
// handler and every route.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/adder/internal/handler"
	"github.com/deppfellow/adder/internal/middleware"
	"github.com/deppfellow/adder/internal/server"
)

// NewRouter returns an echo instance ready to be served by server.Server
// or called directly from a serverless entry point.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerAddRoutes(router, h)

	return router
}
