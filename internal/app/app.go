// Package app wires configuration, logging, services, handlers and the
// router into a runnable application. Every entry point (HTTP server,
// Vercel function) starts here.
package app

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/adder/internal/config"
	"github.com/deppfellow/adder/internal/handler"
	"github.com/deppfellow/adder/internal/logger"
	"github.com/deppfellow/adder/internal/router"
	"github.com/deppfellow/adder/internal/server"
	"github.com/deppfellow/adder/internal/service"
)

// App is a fully wired application.
type App struct {
	Server *server.Server
	Router *echo.Echo
}

// New wires an App from an already loaded configuration.
func New(cfg *config.Config) (*App, error) {
	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return NewWithLogger(cfg, &log, loggerService)
}

// NewWithLogger wires an App around an existing logger. loggerService may be nil.
func NewWithLogger(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) (*App, error) {
	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	services, err := service.NewService(srv)
	if err != nil {
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	return &App{
		Server: srv,
		Router: r,
	}, nil
}
