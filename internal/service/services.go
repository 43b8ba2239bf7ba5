package service

import (
	"github.com/deppfellow/adder/internal/server"
)

// Services is the container of all services, built once at startup.
type Services struct {
	Add *AddService
}

// NewService constructs every service.
func NewService(s *server.Server) (*Services, error) {
	return &Services{
		Add: NewAddService(),
	}, nil
}
