package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Defaults
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "portus-console", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost/portusApp1", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 12*60, cfg.Session.Expiration, "la sesión por defecto dura 12 horas")
	assert.Equal(t, "portus_session", cfg.Session.CookieName)
	assert.Equal(t, 10*time.Minute, cfg.Refresh.ListInterval)
	assert.Equal(t, 10*time.Second, cfg.Refresh.ChatPoll)
}

// ──────────────────────────────────────────────────────────────────────────────
// Overrides por entorno
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("UPSTREAM_BASE_URL", "https://flota.example.com/api/")
	t.Setenv("SESSION_EXPIRATION_MINUTES", "30")
	t.Setenv("CHAT_POLL_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, "https://flota.example.com/api", cfg.Upstream.BaseURL,
		"la base URL pierde el slash final")
	assert.Equal(t, 30, cfg.Session.Expiration)
	assert.Equal(t, 5*time.Second, cfg.Refresh.ChatPoll)
}
