// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// UI modes.
const (
	UILine   = "line"
	UIScreen = "screen"
)

// Config holds every setting the binary reads from the environment.
type Config struct {
	UI       string `env:"SIMPLERPG_UI"       envDefault:"line"`
	Seed     int64  `env:"SIMPLERPG_SEED"     envDefault:"0"`
	Populate bool   `env:"SIMPLERPG_POPULATE" envDefault:"true"`

	LogLevel  string `env:"SIMPLERPG_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"SIMPLERPG_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"SIMPLERPG_LOG_FILE"`

	Telemetry        bool   `env:"SIMPLERPG_TELEMETRY"          envDefault:"false"`
	TelemetryURL     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"  envDefault:"https://api.honeycomb.io"`
	HoneycombAPIKey  string `env:"HONEYCOMB_SIMPLERPG_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_SIMPLERPG_DATASET"  envDefault:"simplerpg"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that env tags cannot express.
func (c Config) Validate() error {
	switch c.UI {
	case UILine, UIScreen:
	default:
		return fmt.Errorf("SIMPLERPG_UI: unknown mode %q (want %q or %q)", c.UI, UILine, UIScreen)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("SIMPLERPG_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}
