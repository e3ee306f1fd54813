// Package logging builds the zap loggers used across gearscan.
// Each subsystem logs through a named child logger so output can be filtered by category.
package logging

import (
	"fmt"
	"time"

	"gearscan/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // CLI startup, config loading
	CategorySolver Category = "solver" // Parsing and aggregate computation
	CategoryFetch  Category = "fetch"  // Input downloads
	CategoryStore  Category = "store"  // Run history
	CategoryWatch  Category = "watch"  // Input directory watcher
)

// New builds a logger from cfg. verbose forces debug level regardless of cfg.Level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = append(zc.OutputPaths, cfg.File)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns the child logger for a category. A nil parent yields a no-op logger.
func For(parent *zap.Logger, category Category) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(string(category))
}

// Timer measures one operation and logs its duration when stopped.
type Timer struct {
	logger *zap.Logger
	op     string
	start  time.Time
}

// StartTimer begins timing an operation
func StartTimer(logger *zap.Logger, operation string) *Timer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Timer{logger: logger, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration at debug level
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Debug(t.op+" completed", zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithThreshold logs a warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		t.logger.Warn(t.op+" was slow", zap.Duration("elapsed", elapsed), zap.Duration("threshold", threshold))
	} else {
		t.logger.Debug(t.op+" completed", zap.Duration("elapsed", elapsed))
	}
	return elapsed
}
