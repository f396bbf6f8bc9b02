package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "SCHEMATIC_API_KEY", cfg.Schematic.APIKeyEnv)
		assert.Zero(t, cfg.Analysis.SimulatedDelayMS)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
server:
  port: 9090
cors:
  allowed_origin: "https://app.example.com"
logging:
  level: debug
analysis:
  simulated_delay_ms: 1500
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "https://app.example.com", cfg.CORS.AllowedOrigin)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 1500, cfg.Analysis.SimulatedDelayMS)
	})

	t.Run("environment variable overrides the origin", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGIN", "https://override.example.com")

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "https://override.example.com", cfg.CORS.AllowedOrigin)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
