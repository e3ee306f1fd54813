package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for its config file.
const DefaultPath = ".gearscan/config.yaml"

// Config holds all gearscan configuration.
type Config struct {
	// Puzzle selection and input location
	Puzzle PuzzleConfig `yaml:"puzzle"`

	// Input download settings
	Fetch FetchConfig `yaml:"fetch"`

	// Solver settings
	Solver SolverConfig `yaml:"solver"`

	// Run history
	Store StoreConfig `yaml:"store"`

	// Watch mode
	Watch WatchConfig `yaml:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// PuzzleConfig selects the puzzle day and where its inputs live.
type PuzzleConfig struct {
	Day      int    `yaml:"day"`
	InputDir string `yaml:"input_dir"`
}

// FetchConfig configures input downloads. URLs contain a single %d for the day.
type FetchConfig struct {
	Session   string `yaml:"session"`
	InputURL  string `yaml:"input_url"`
	PuzzleURL string `yaml:"puzzle_url"`
	Timeout   string `yaml:"timeout"`
}

// SolverConfig configures the solver.
type SolverConfig struct {
	Concurrency int `yaml:"concurrency"` // 0 = one worker per task
}

// StoreConfig configures the run history database.
type StoreConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Puzzle: PuzzleConfig{
			Day:      3,
			InputDir: "inputs",
		},

		Fetch: FetchConfig{
			InputURL:  "https://adventofcode.com/2023/day/%d/input",
			PuzzleURL: "https://adventofcode.com/2023/day/%d",
			Timeout:   "30s",
		},

		Solver: SolverConfig{
			Concurrency: 0,
		},

		Store: StoreConfig{
			Enabled:      true,
			DatabasePath: ".gearscan/runs.db",
		},

		Watch: WatchConfig{
			Debounce: "250ms",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Puzzle.Day < 1 || c.Puzzle.Day > 25 {
		return fmt.Errorf("invalid puzzle day: %d (valid: 1-25)", c.Puzzle.Day)
	}
	if c.Puzzle.InputDir == "" {
		return fmt.Errorf("puzzle input_dir not configured")
	}
	if c.Solver.Concurrency < 0 {
		return fmt.Errorf("invalid solver concurrency: %d", c.Solver.Concurrency)
	}
	if c.Store.Enabled && c.Store.DatabasePath == "" {
		return fmt.Errorf("store enabled but database_path is empty")
	}
	return c.Logging.Validate()
}

// GetFetchTimeout returns the download timeout as a duration.
func (c *Config) GetFetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetWatchDebounce returns the watch debounce as a duration.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}
