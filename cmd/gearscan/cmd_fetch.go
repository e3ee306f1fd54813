package main

import (
	"context"
	"fmt"
	"net/http"

	"gearscan/internal/fetch"

	"github.com/spf13/cobra"
)

// fetchCmd downloads the inputs of a day
var fetchCmd = &cobra.Command{
	Use:   "fetch [day]",
	Short: "Download the full input and the samples of a day",
	Long: `Downloads the personal puzzle input (requires the session cookie, set
fetch.session in the config or AOC_SESSION) and extracts the sample inputs
from the puzzle page. Files that already exist are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), timeout)
	defer cancel()

	client := fetch.New(cfg.Fetch.InputURL, cfg.Fetch.PuzzleURL, cfg.Fetch.Session,
		fetch.WithHTTPClient(&http.Client{Timeout: cfg.GetFetchTimeout()}),
		fetch.WithLogger(logger),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fetching inputs for day %d into '%s'.\n", day, cfg.Puzzle.InputDir)

	res, err := client.Sync(ctx, cfg.Puzzle.InputDir, day)
	for _, p := range res.Written {
		fmt.Fprintf(out, "  wrote '%s'\n", p)
	}
	for _, p := range res.Skipped {
		fmt.Fprintf(out, "  input file '%s' already exists\n", p)
	}
	return err
}
