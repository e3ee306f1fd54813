package main

import (
	"fmt"
	"os"

	"gearscan/internal/config"

	"github.com/spf13/cobra"
)

var configForce bool

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the gearscan configuration file",
	Long: `Manage the gearscan configuration file.

Available subcommands:
  init - Write the default configuration to --config`,
}

// configInitCmd writes the default configuration
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Writes the default configuration to the path given by --config
(.gearscan/config.yaml by default). Environment overrides such as AOC_SESSION
are not written. An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(configPath); err == nil && !configForce {
		fmt.Fprintf(out, "Config file '%s' already exists (use --force to overwrite).\n", configPath)
		return nil
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "Wrote default config to '%s'.\n", configPath)
	return nil
}
