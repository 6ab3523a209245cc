package mcp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
	assert.InDelta(t, 0.7, cfg.ConfidenceThreshold, 1e-6)
	assert.True(t, cfg.ExtractRules)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 30, cfg.PollMaxAttempts)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "http://analysis.internal:9000",
		"api_key": "k1",
		"confidence_threshold": 0.5
	}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://analysis.internal:9000", cfg.ServerURL)
	assert.Equal(t, "k1", cfg.APIKey)
	assert.InDelta(t, 0.5, cfg.ConfidenceThreshold, 1e-6)
	// Untouched keys keep their defaults.
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url": "http://from-file:9000"}`), 0o600))

	t.Setenv("MCP_SERVER_URL", "http://from-env:7000")
	t.Setenv("MCP_TIMEOUT_SECONDS", "10")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:7000", cfg.ServerURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
}

func TestLoadConfigRejectsBadThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"confidence_threshold": 1.5}`), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
