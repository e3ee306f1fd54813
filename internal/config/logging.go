package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // optional, in addition to stderr
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks level and format.
func (c LoggingConfig) Validate() error {
	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Level, ValidLogLevels)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Format)
	}
	return nil
}
