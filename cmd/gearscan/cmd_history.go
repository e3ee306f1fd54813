package main

import (
	"fmt"
	"strconv"

	"gearscan/cmd/gearscan/ui"
	"gearscan/internal/store"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recorded runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !cfg.Store.Enabled {
		fmt.Fprintln(out, "Run history is disabled (store.enabled: false).")
		return nil
	}

	history, err := store.NewLocalStore(cfg.Store.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer history.Close()

	runs, err := history.Recent(commandContext(cmd), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		result := r.Answer
		if r.Error != "" {
			result = "error: " + r.Error
		}
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Part),
			r.Variant,
			r.Elapsed.String(),
			result,
		})
	}
	fmt.Fprint(out, ui.DefaultStyles().RenderTable(
		[]string{"TIME", "DAY", "PART", "VARIANT", "ELAPSED", "RESULT"}, rows))
	return nil
}
