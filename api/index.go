// Package handler is the Vercel serverless entry point. Vercel calls
// Handler for every request routed to /api; vercel.json rewrites all
// /api/* paths here and the echo router dispatches them.
package handler

import (
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/deppfellow/adder/internal/app"
	"github.com/deppfellow/adder/internal/config"
)

var (
	routerInstance http.Handler
	once           sync.Once
)

// setup runs once per cold start.
func setup() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	a, err := app.New(cfg)
	if err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to initialize application")
	}

	routerInstance = a.Router
}

// Handler serves one Vercel function invocation.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)

	routerInstance.ServeHTTP(w, r)
}
