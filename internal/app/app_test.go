package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/adder/internal/config"
)

func TestNewServesAdd(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	log := zerolog.Nop()
	a, err := NewWithLogger(cfg, &log, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/add/2/3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":5}`, rec.Body.String())
}

func TestNewBuildsLoggerFromConfig(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	a, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, a.Server.Logger)
	assert.Nil(t, a.Server.LoggerService.GetApplication())
}
