package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"gearscan/cmd/gearscan/ui"
	"gearscan/internal/solver"
	"gearscan/internal/store"
	"gearscan/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	solvePart    int
	solveVariant string
	solveWatch   bool
	solveExplain bool
	solveNoSave  bool
)

// solveCmd solves the schematic inputs of a day
var solveCmd = &cobra.Command{
	Use:   "solve [day]",
	Short: "Solve both parts on the sample and full inputs",
	Long: `Runs part 1 and part 2 against the sample and the full input of a day and
prints one timed line per run:

  [mini, Part 1, t = 0ms]: 4361

A missing or malformed input is reported on its line without stopping the other runs.

Examples:
  gearscan solve
  gearscan solve 3 --part 2 --explain
  gearscan solve --variant mini --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solvePart, "part", "p", 0, "Only solve this part (1 or 2)")
	solveCmd.Flags().StringVar(&solveVariant, "variant", "", "Only solve this input variant (mini or full)")
	solveCmd.Flags().BoolVarP(&solveWatch, "watch", "W", false, "Re-solve whenever an input file changes")
	solveCmd.Flags().BoolVar(&solveExplain, "explain", false, "List the gears behind each part 2 answer")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-record", false, "Do not record runs in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(args)
	if err != nil {
		return err
	}
	tasks, err := selectTasks(day)
	if err != nil {
		return err
	}

	var history *store.LocalStore
	if cfg.Store.Enabled && !solveNoSave {
		history, err = store.NewLocalStore(cfg.Store.DatabasePath, logger)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	s := solver.New(solver.WithLogger(logger), solver.WithConcurrency(cfg.Solver.Concurrency))
	out := cmd.OutOrStdout()

	if !solveWatch {
		ctx, cancel := context.WithTimeout(commandContext(cmd), timeout)
		defer cancel()
		solveAndPrint(ctx, out, s, history, day, tasks)
		return nil
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solveAndPrint(ctx, out, s, history, day, tasks)

	w, err := watch.New(cfg.Puzzle.InputDir, func(path string) {
		if affected := tasksForPath(tasks, path); len(affected) > 0 {
			solveAndPrint(ctx, out, s, history, day, affected)
		}
	}, watch.WithDebounce(cfg.GetWatchDebounce()), watch.WithLogger(logger))
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintln(out, ui.DefaultStyles().Muted.Render("Watching "+cfg.Puzzle.InputDir+" (Ctrl+C to stop)"))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func selectTasks(day int) ([]solver.Task, error) {
	var part solver.Part
	if solvePart != 0 {
		p, err := solver.ParsePart(strconv.Itoa(solvePart))
		if err != nil {
			return nil, err
		}
		part = p
	}
	var variant solver.Variant
	if solveVariant != "" {
		v, err := solver.ParseVariant(solveVariant)
		if err != nil {
			return nil, err
		}
		variant = v
	}
	return solver.Filter(solver.Tasks(cfg.Puzzle.InputDir, day), part, variant), nil
}

// tasksForPath returns the tasks reading path.
func tasksForPath(tasks []solver.Task, path string) []solver.Task {
	var out []solver.Task
	for _, t := range tasks {
		if filepath.Clean(t.Path) == filepath.Clean(path) {
			out = append(out, t)
		}
	}
	return out
}

func solveAndPrint(ctx context.Context, out io.Writer, s *solver.Solver, history *store.LocalStore, day int, tasks []solver.Task) {
	styles := ui.DefaultStyles()
	answers := s.Run(ctx, tasks)

	fmt.Fprintln(out, styles.RenderHeader(fmt.Sprintf("[Day %d]", day)))
	for _, a := range answers {
		fmt.Fprintln(out, styles.RenderResult(a.Label(), a.Result(), a.Err != nil))
		if solveExplain {
			for _, g := range a.Gears {
				fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("  gear at %s: %d x %d = %d",
					g.At, g.Numbers[0].Value, g.Numbers[1].Value, g.Ratio())))
			}
		}
	}

	if history == nil {
		return
	}
	for _, a := range answers {
		run := store.Run{
			Day:         a.Task.Day,
			Part:        int(a.Task.Part),
			Variant:     string(a.Task.Variant),
			Answer:      a.Value,
			Elapsed:     a.Elapsed,
			InputSHA256: a.InputSHA256,
		}
		if a.Err != nil {
			run.Error = a.Err.Error()
		}
		if _, err := history.Record(ctx, run); err != nil {
			logger.Warn("failed to record run", zap.Error(err))
		}
	}
}
