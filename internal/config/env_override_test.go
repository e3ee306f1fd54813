package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("AOC_SESSION sets the session cookie", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AOC_SESSION", "abc123")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "abc123", cfg.Fetch.Session)
	})

	t.Run("empty variables leave file values alone", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.Fetch.Session = "from-file"
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "from-file", cfg.Fetch.Session)
		assert.Equal(t, "inputs", cfg.Puzzle.InputDir)
	})

	t.Run("paths, level and day", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEARSCAN_INPUT_DIR", "/tmp/in")
		t.Setenv("GEARSCAN_DB", "/tmp/runs.db")
		t.Setenv("GEARSCAN_LOG_LEVEL", "debug")
		t.Setenv("GEARSCAN_DAY", "12")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "/tmp/in", cfg.Puzzle.InputDir)
		assert.Equal(t, "/tmp/runs.db", cfg.Store.DatabasePath)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 12, cfg.Puzzle.Day)
	})

	t.Run("malformed day is an error", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEARSCAN_DAY", "three")

		cfg := DefaultConfig()
		assert.Error(t, cfg.applyEnvOverrides())
	})

	t.Run("env wins over the file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := DefaultConfig()
		cfg.Fetch.Session = "from-file"
		require.NoError(t, cfg.Save(path))

		t.Setenv("AOC_SESSION", "from-env")
		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", loaded.Fetch.Session)
	})
}
