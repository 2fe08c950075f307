// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DataFile is the path of the JSON file holding all trips.
	DataFile string `env:"DATA_FILE" envDefault:"trips.json"`

	// MediaDir is the directory where cover images are stored.
	MediaDir string `env:"MEDIA_DIR" envDefault:"media"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Vite dev server.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`

	// GeocodeBaseURL is the base URL of the place search / reverse geocoding
	// service. Empty disables the /places endpoints' upstream (they answer
	// 502 upstream_unavailable).
	GeocodeBaseURL string `env:"GEOCODE_BASE_URL"`

	// MetricsAddr is the listen address for the Prometheus /metrics endpoint.
	// Empty disables metrics serving.
	MetricsAddr string `env:"METRICS_ADDR"`

	// MaxBodyBytes caps incoming request bodies. Must cover the image upload
	// limit or every PUT /trips/{id}/image fails early.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"10485760"`
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}
