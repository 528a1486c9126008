package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults applied after loading.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultDBPath         = "playlog-client.db"
	DefaultTimeoutSeconds = 30
)

// EnvPrefix is the prefix of environment variables overriding config
// file values, e.g. PLAYLOG_API_KEY -> api_key.
const EnvPrefix = "PLAYLOG_"

// Config holds the client configuration.
type Config struct {
	BaseURL        string `koanf:"base_url"`
	APIKey         string `koanf:"api_key"`
	DBPath         string `koanf:"db_path"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// Load reads the optional YAML config file at path, then overlays
// PLAYLOG_-prefixed environment variables, then fills defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}

	return &cfg, nil
}
