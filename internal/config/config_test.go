package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"AOC_SESSION", "GEARSCAN_INPUT_DIR", "GEARSCAN_DB", "GEARSCAN_LOG_LEVEL", "GEARSCAN_DAY"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.Puzzle.Day)
	assert.Equal(t, "inputs", cfg.Puzzle.InputDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Store.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Puzzle.Day = 7
	cfg.Fetch.Session = "cookie"
	cfg.Logging.Format = "json"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Puzzle.Day)
	assert.Equal(t, "cookie", loaded.Fetch.Session)
	assert.Equal(t, "json", loaded.Logging.Format)
	assert.Equal(t, cfg.Fetch.InputURL, loaded.Fetch.InputURL)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzle:\n  input_dir: data\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Puzzle.InputDir)
	assert.Equal(t, 3, cfg.Puzzle.Day)
	assert.Equal(t, "250ms", cfg.Watch.Debounce)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzle: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "day zero", mutate: func(c *Config) { c.Puzzle.Day = 0 }, wantErr: true},
		{name: "day 26", mutate: func(c *Config) { c.Puzzle.Day = 26 }, wantErr: true},
		{name: "no input dir", mutate: func(c *Config) { c.Puzzle.InputDir = "" }, wantErr: true},
		{name: "negative concurrency", mutate: func(c *Config) { c.Solver.Concurrency = -1 }, wantErr: true},
		{name: "store without path", mutate: func(c *Config) { c.Store.DatabasePath = "" }, wantErr: true},
		{name: "store disabled without path", mutate: func(c *Config) {
			c.Store.Enabled = false
			c.Store.DatabasePath = ""
		}},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "30s", cfg.GetFetchTimeout().String())
	assert.Equal(t, "250ms", cfg.GetWatchDebounce().String())

	cfg.Fetch.Timeout = "soon"
	cfg.Watch.Debounce = "-1s"
	assert.Equal(t, "30s", cfg.GetFetchTimeout().String())
	assert.Equal(t, "250ms", cfg.GetWatchDebounce().String())
}
