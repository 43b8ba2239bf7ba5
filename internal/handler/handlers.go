package handler

import (
	"github.com/deppfellow/adder/internal/server"
	"github.com/deppfellow/adder/internal/service"
)

// Handlers groups every HTTP handler.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Add     *AddHandler
}

// NewHandlers constructs all handlers.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Add:     NewAddHandler(s, services.Add),
	}
}
