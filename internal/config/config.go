// Package config loads moviefy configuration from defaults, an optional YAML file and
// the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigFile is picked up from the working directory when no path is given.
const DefaultConfigFile = "moviefy.yaml"

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Engine   EngineConfig   `koanf:"engine"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port        int           `koanf:"port" validate:"min=1,max=65535"`
	CORSOrigins []string      `koanf:"cors_origins"`
	RateLimit   int           `koanf:"rate_limit" validate:"min=0"` // requests per window per IP; 0 disables
	RateWindow  time.Duration `koanf:"rate_window" validate:"min=0"`
}

// DatabaseConfig configures the optional Postgres catalog store.
type DatabaseConfig struct {
	URL string `koanf:"url"`
}

// CatalogConfig configures the file catalog store, used when no database URL is set.
type CatalogConfig struct {
	File string `koanf:"file"`
}

// EngineConfig tunes scoring and indexing.
type EngineConfig struct {
	TopN            int           `koanf:"top_n" validate:"min=1,max=15"`
	Weights         string        `koanf:"weights" validate:"oneof=canonical reduced"`
	Vectorizer      string        `koanf:"vectorizer" validate:"oneof=default strict"`
	MinDF           int           `koanf:"min_df" validate:"min=0"` // 0 keeps the preset's value
	MaxFeatures     int           `koanf:"max_features" validate:"min=0"`
	RefreshInterval time.Duration `koanf:"refresh_interval" validate:"min=0"` // 0 disables periodic rebuilds
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"*"},
			RateLimit:   60,
			RateWindow:  time.Minute,
		},
		Engine: EngineConfig{
			TopN:        10,
			Weights:     "canonical",
			Vectorizer:  "default",
			MaxFeatures: 10000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load layers defaults, the YAML file at path (or DefaultConfigFile if present) and
// environment variables, then validates the result. An explicit path that cannot be
// read is an error; a missing default file is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitList(k, "server.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			return DefaultConfigFile, nil
		}
		return "", nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return path, nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config paths.
var envMappings = map[string]string{
	"database_url":                    "database.url",
	"moviefy_database_url":            "database.url",
	"moviefy_port":                    "server.port",
	"moviefy_server_port":             "server.port",
	"moviefy_cors_origins":            "server.cors_origins",
	"moviefy_server_rate_limit":       "server.rate_limit",
	"moviefy_server_rate_window":      "server.rate_window",
	"moviefy_catalog_file":            "catalog.file",
	"moviefy_engine_top_n":            "engine.top_n",
	"moviefy_engine_weights":          "engine.weights",
	"moviefy_engine_vectorizer":       "engine.vectorizer",
	"moviefy_engine_min_df":           "engine.min_df",
	"moviefy_engine_max_features":     "engine.max_features",
	"moviefy_engine_refresh_interval": "engine.refresh_interval",
	"moviefy_log_level":               "logging.level",
	"moviefy_log_format":              "logging.format",
}

// envTransform maps an environment variable name to its config path. Unknown
// variables map to "" and are skipped.
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}

// splitList turns a comma-separated string value (as set from the environment)
// into a trimmed slice.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}

	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if err := k.Set(path, items); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}
