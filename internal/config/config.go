// Package config loads the dashboard settings.
//
// Sources, later ones winning: built-in defaults, an optional YAML file,
// BOTDASH_* environment variables ("__" separates nesting, so
// BOTDASH_LOG__LEVEL sets log.level) and explicit overrides from the
// command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "BOTDASH_"

// EnvConfigFile names the config file when --config is not given.
const EnvConfigFile = EnvPrefix + "CONFIG"

// DefaultBackendURL is used when no backend_url is configured.
const DefaultBackendURL = "http://localhost:8001"

// Config is the validated application configuration.
type Config struct {
	BackendURL string          `koanf:"backend_url" validate:"required,http_url"`
	Log        LogConfig       `koanf:"log"`
	Telemetry  TelemetryConfig `koanf:"telemetry"`
	Metrics    MetricsConfig   `koanf:"metrics"`
}

// LogConfig selects the operator log level and destination.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	// File receives the log in interactive mode, where the terminal belongs
	// to the page.
	File string `koanf:"file" validate:"required"`
}

// TelemetryConfig configures trace export. Export is off when Endpoint is
// empty and OTEL_EXPORTER_OTLP_ENDPOINT is unset.
type TelemetryConfig struct {
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name" validate:"required"`
	Insecure    bool   `koanf:"insecure"`
}

// MetricsConfig enables the Prometheus listener when Addr is set.
type MetricsConfig struct {
	Addr string `koanf:"addr" validate:"omitempty,hostname_port"`
}

// Options controls Load.
type Options struct {
	// File is an explicit config file path. When empty, BOTDASH_CONFIG is
	// consulted; when both are empty no file is read.
	File string
	// Overrides are applied last, keyed by dotted path ("log.level").
	Overrides map[string]interface{}
}

// Defaults returns the built-in settings.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"backend_url":            DefaultBackendURL,
		"log.level":              "info",
		"log.file":               filepath.Join(os.TempDir(), "botdash.log"),
		"telemetry.endpoint":     "",
		"telemetry.service_name": "botdash",
		"telemetry.insecure":     false,
		"metrics.addr":           "",
	}
}

// Load reads, merges and validates the configuration.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path := opts.File
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("load overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps BOTDASH_LOG__LEVEL to log.level.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Join(strings.Split(s, "__"), ".")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg and reports every invalid field.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
