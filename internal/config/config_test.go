package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://api.hubapi.com", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AccessToken)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HUBSPOT_MCP_ADDR", ":9090")
	t.Setenv("HUBSPOT_MCP_ACCESS_TOKEN", "pat-na1-secret")
	t.Setenv("HUBSPOT_MCP_BASE_URL", "http://localhost:8000")
	t.Setenv("HUBSPOT_MCP_LOG_LEVEL", "debug")
	t.Setenv("HUBSPOT_MCP_APP_ID", "12345")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "pat-na1-secret", cfg.AccessToken)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "12345", cfg.AppID)
}
