package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that take precedence over the file.
type envOverrides struct {
	Session      string `env:"AOC_SESSION"`
	InputDir     string `env:"GEARSCAN_INPUT_DIR"`
	DatabasePath string `env:"GEARSCAN_DB"`
	LogLevel     string `env:"GEARSCAN_LOG_LEVEL"`
	Day          int    `env:"GEARSCAN_DAY"`
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Session != "" {
		c.Fetch.Session = o.Session
	}
	if o.InputDir != "" {
		c.Puzzle.InputDir = o.InputDir
	}
	if o.DatabasePath != "" {
		c.Store.DatabasePath = o.DatabasePath
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.Day != 0 {
		c.Puzzle.Day = o.Day
	}
	return nil
}
