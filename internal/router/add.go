package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/adder/internal/handler"
)

func registerAddRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.GET("/add/:a/:b", h.Add.AddPath())
	api.GET("/add", h.Add.AddQuery())
}
