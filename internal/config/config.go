// Package config provides centralized runtime configuration for recordar.
// Values come from built-in defaults overlaid by RECORDAR_-prefixed
// environment variables; a .env file in the working directory is honored.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"recordar/internal/errors"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// RECORDAR_LOG_LEVEL=debug or RECORDAR_NOTIFY_URL=https://...
const envPrefix = "RECORDAR_"

// Config holds all runtime configuration.
type Config struct {
	// DataDir is the Badger database directory. Empty selects the
	// XDG default; ":memory:" selects an in-memory database.
	DataDir string `koanf:"datadir"`

	Log    LogConfig    `koanf:"log"`
	Notify NotifyConfig `koanf:"notify"`
	HTTP   HTTPConfig   `koanf:"http"`
	Watch  WatchConfig  `koanf:"watch"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
	JSON  bool   `koanf:"json"`
}

// NotifyConfig describes the webhook target notifications are delivered to.
// An empty URL means no delivery target is configured; scheduling still
// works, delivery fails gracefully.
type NotifyConfig struct {
	URL      string `koanf:"url"`
	Type     string `koanf:"type"` // discord, slack, generic
	Template string `koanf:"template"`
}

// HTTPConfig holds delivery HTTP client configuration.
type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout"`
	Retries int           `koanf:"retries"`
}

// WatchConfig holds the watch loop configuration.
type WatchConfig struct {
	// Spec is the cron expression (with seconds) for the rescan tick.
	Spec string `koanf:"spec"`
}

// Defaults returns the built-in configuration.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"datadir":      "",
		"log.level":    "info",
		"log.json":     false,
		"notify.url":   "",
		"notify.type":  "generic",
		"http.timeout": "30s",
		"http.retries": 3,
		"watch.spec":   "0 * * * * *",
	}
}

// Load builds the configuration from defaults and the environment.
func Load() (*Config, error) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.HTTP.Timeout <= 0 {
		cfg.HTTP.Timeout = 30 * time.Second
	}
	if cfg.HTTP.Retries < 0 {
		cfg.HTTP.Retries = 0
	}
	if cfg.Watch.Spec == "" {
		cfg.Watch.Spec = "0 * * * * *"
	}

	return &cfg, nil
}
