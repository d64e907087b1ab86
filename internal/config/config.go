package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven configuration for consumers of the
// access layer. Variables carry the INVENTORY_ prefix, e.g.
// INVENTORY_API_BASE_URL.
type Config struct {
	APIBaseURL  string        `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
	TokenFile   string        `envconfig:"TOKEN_FILE"`
	RedisAddr   string        `envconfig:"REDIS_ADDR"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment. TokenFile defaults to
// ~/.invctl/token when unset.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("inventory", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".invctl", "token")
	}
	return cfg, nil
}
