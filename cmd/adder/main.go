// Command adder runs the add API as a standalone HTTP server.
package main

import (
	"context"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"github.com/deppfellow/adder/internal/app"
	"github.com/deppfellow/adder/internal/config"
	"github.com/deppfellow/adder/internal/logger"
)

func main() {
	bootstrap := logger.NewLogger("info", false)

	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	a, err := app.New(cfg)
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("failed to initialize application")
	}
	log := a.Server.Logger

	go func() {
		if err := a.Server.Start(); err != nil {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Info().Msg("shutting down server")
				return a.Server.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("application exited")
	os.Exit(exitCode)
}
