package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces the environment overrides, e.g. PARLEY_LOG_LEVEL.
const EnvPrefix = "PARLEY_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings of the parley command.
type Config struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// MaxAttempts bounds invalid selections per choice visit. Zero keeps asking forever.
	MaxAttempts int `mapstructure:"max_attempts" validate:"gte=0"`

	Format      string `mapstructure:"format" validate:"oneof=text json"`
	Banner      bool   `mapstructure:"banner"`
	MetricsAddr string `mapstructure:"metrics_addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatText,
		Banner:   true,
	}
}

func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"log_level":    d.LogLevel,
		"max_attempts": d.MaxAttempts,
		"format":       d.Format,
		"banner":       d.Banner,
		"metrics_addr": d.MetricsAddr,
	}
}

// Load reads the YAML file at path (optional), applies PARLEY_* environment
// overrides and validates the result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	raw := defaults()

	if path != "" {
		fileValues, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		for k, v := range fileValues {
			raw[k] = v
		}
	}

	for key := range raw {
		if val, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = val
		}
	}

	cfg, err := decode(raw)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}

func decode(raw map[string]any) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
