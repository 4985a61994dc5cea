package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the console reads from the environment.
type Config struct {
	Addr       string `env:"APP_ADDR,     default=:8080"`
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:5230"`
	SQLitePath string `env:"SQLITE_PATH,  default=userconsole.db"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,   default=false"`

	// DisableValidation skips every client-side form schema so the remote
	// API's own enforcement can be exercised. Not a production feature.
	DisableValidation bool `env:"DISABLE_VALIDATION, default=false"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return &cfg, nil
}
