package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/adder/internal/handler"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
