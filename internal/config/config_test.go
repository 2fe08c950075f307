package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bhanukaonline/tripmate/internal/config"
)

// TestLoad_defaults verifies that every optional env var falls back to its
// default when nothing is set.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("MEDIA_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("GEOCODE_BASE_URL", "")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "trips.json", cfg.DataFile)
	require.Equal(t, "media", cfg.MediaDir)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Empty(t, cfg.GeocodeBaseURL)
	require.Empty(t, cfg.MetricsAddr)
	require.EqualValues(t, 10485760, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/var/lib/tripmate/trips.json")
	t.Setenv("MEDIA_DIR", "/var/lib/tripmate/media")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("GEOCODE_BASE_URL", "https://nominatim.example.com")
	t.Setenv("METRICS_ADDR", ":9100")
	t.Setenv("MAX_BODY_BYTES", "1048576")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/var/lib/tripmate/trips.json", cfg.DataFile)
	require.Equal(t, "/var/lib/tripmate/media", cfg.MediaDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "https://nominatim.example.com", cfg.GeocodeBaseURL)
	require.Equal(t, ":9100", cfg.MetricsAddr)
	require.EqualValues(t, 1048576, cfg.MaxBodyBytes)
}

// TestLoad_invalidLogLevel verifies that an unknown LOG_LEVEL is rejected and
// the error names the bad value.
func TestLoad_invalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := config.Load()

	require.Error(t, err)
	require.Contains(t, err.Error(), "LOG_LEVEL")
}
