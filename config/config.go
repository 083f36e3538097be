// Package config provides a minimal env-based config loader for actions-web.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds service configuration. It is built once at startup and
// passed explicitly; nothing else reads the environment.
type Config struct {
	Env  string // environment tag (development/production); informational only
	Port string // TCP port the HTTP server binds
}

// Load reads config from environment variables with sensible defaults.
// A .env file in the working directory is applied first if present, so
// local runs behave like deployed ones. APP_ENV defaults to "development"
// and PORT to "8080". A PORT value that is not a valid port number is a
// configuration error and nothing should be bound.
func Load() (*Config, error) {
	godotenv.Load() //nolint:errcheck // .env is optional outside development

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid PORT %q: %w", port, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("invalid PORT %q: out of range 1-65535", port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
