package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"gearscan/internal/config"
	"gearscan/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	timeout    time.Duration

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gearscan",
	Short: "gearscan - engine schematic part numbers and gear ratios",
	Long: `gearscan parses engine schematics and answers two questions about them:

  Part 1: the sum of every number adjacent to a symbol
  Part 2: the sum of the products of every gear pair (a '*' touching exactly two numbers)

Inputs live in the configured input directory as DayNN.txt (full input) and
DayNN_1.txt / DayNN_2.txt (the samples of each part).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logging.For(logger, logging.CategoryBoot).Debug("config loaded",
			zap.String("path", configPath),
			zap.Int("day", cfg.Puzzle.Day),
			zap.String("input_dir", cfg.Puzzle.InputDir),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	// Add commands to root
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveDay returns the day given as the only argument, or the configured day.
func resolveDay(args []string) (int, error) {
	if len(args) == 0 {
		return cfg.Puzzle.Day, nil
	}
	day, err := strconv.Atoi(args[0])
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("invalid day %q (valid: 1-25)", args[0])
	}
	return day, nil
}

// commandContext returns the command's context, or Background when the command was
// not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
