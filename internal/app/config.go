package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (a .env file is loaded by main
// when present). Flags override these values where a command defines
// them.
type Config struct {
	DBPath       string        `env:"GODX_DB"`
	LookupURL    string        `env:"GODX_LOOKUP_URL"`
	LookupAPIKey string        `env:"GODX_LOOKUP_API_KEY"`
	CatalogPath  string        `env:"GODX_CATALOG"`
	SyncInterval time.Duration `env:"GODX_SYNC_INTERVAL" envDefault:"15s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}
