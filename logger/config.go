package logger

import (
	"fmt"
	"io"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	Level   string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error silent"`
	Format  string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=console json"`
	NoColor bool   `yaml:"no_color" mapstructure:"no_color"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Format == "" {
		c.Format = "console"
	}
}

// FromConfig builds a logger writing to out.
func FromConfig(cfg Config, out io.Writer) (Logger, error) {
	cfg.ApplyDefaults()

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return NewLogger(level, out), nil
	case "console":
		return NewConsoleLogger(level, out, cfg.NoColor), nil
	default:
		return nil, fmt.Errorf("logging.format must be one of [console json] (got: %s)", cfg.Format)
	}
}
