package handler

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/adder/internal/server"
)

//go:embed static/openapi.json static/openapi.html
var staticFiles embed.FS

// OpenAPIHandler serves the API description and a small viewer page.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec writes the OpenAPI document.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	spec, err := staticFiles.ReadFile("static/openapi.json")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI spec: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, spec)
}

// ServeOpenAPIUI writes the HTML viewer for the OpenAPI document.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := staticFiles.ReadFile("static/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
