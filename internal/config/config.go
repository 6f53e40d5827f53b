package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

const devStateSecret = "dev-secret-change-in-production"

// Config holds the dashboard process configuration.
type Config struct {
	Addr        string `env:"DASHBOARD_ADDR" envDefault:":8080"`
	Env         string `env:"DASHBOARD_ENV" envDefault:"development"`
	BackendURL  string `env:"BACKEND_BASE_URL" envDefault:"http://127.0.0.1:9000"`
	StatePath   string `env:"DASHBOARD_STATE_PATH" envDefault:"dashboard.db"`
	StateSecret string `env:"DASHBOARD_STATE_SECRET" envDefault:"dev-secret-change-in-production"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	if cfg.Env == "production" && cfg.StateSecret == devStateSecret {
		slog.Error("DASHBOARD_STATE_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg, nil
}
