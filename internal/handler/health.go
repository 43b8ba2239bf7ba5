package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/adder/internal/middleware"
	"github.com/deppfellow/adder/internal/server"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// CheckHealth reports that the process is up. The service has no
// dependencies, so there is nothing else to probe.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Msg("health check passed")

	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
	})
}
