// Package config handles loading and parsing application configuration.
// The config file path comes from (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Flag parsing lives in cmd/tuthub; this package only resolves and reads.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Storage formats.
const (
	FormatSQLite = "sqlite"
	FormatYAML   = "yaml"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" makes cleanenv refuse a missing value; validate:"..."
// rules are checked afterwards with go-playground/validator.
type Config struct {
	// Env controls log format and verbosity.
	Env string `yaml:"env" env:"ENV" env-required:"true" validate:"oneof=dev staging prod"`

	// StoragePath is the data file: a SQLite .db file or a YAML document,
	// depending on StorageFormat.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// StorageFormat picks the backend.
	StorageFormat string `yaml:"storage_format" env:"STORAGE_FORMAT" env-default:"sqlite" validate:"oneof=sqlite yaml"`

	// HTTPServer is embedded so cfg.HTTPServer.Addr and cfg.Addr both work.
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings for --serve mode.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:"localhost:8082" validate:"required,hostname_port"`
}

// ResolvePath picks the config path: CONFIG_PATH first, then flagValue.
func ResolvePath(flagValue string) (string, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path, nil
	}
	if flagValue != "" {
		return flagValue, nil
	}
	return "", errors.New("config path is not set: use --config flag or CONFIG_PATH env var")
}

// Load reads and validates the config at path.
func Load(path string) (*Config, error) {
	// os.Stat first so a missing file gets a clear message rather than a
	// cryptic "open: no such file" from deep inside cleanenv.
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	// cleanenv.ReadConfig reads the YAML file, applies env overrides and
	// defaults, and enforces env-required.
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load for main: functions prefixed with "Must" fatal on
// failure, so if this returns the config is valid.
func MustLoad(flagValue string) *Config {
	path, err := ResolvePath(flagValue)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
