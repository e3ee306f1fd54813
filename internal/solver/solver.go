// Package solver runs schematic inputs through the parser and the adjacency
// aggregates, and reports timed answers for each puzzle part.
package solver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"gearscan/internal/logging"
	"gearscan/internal/schematic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownPart    = errors.New("unknown part")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Totals holds both aggregates of one grid.
type Totals struct {
	PartNumberSum  *big.Int
	GearProductSum *big.Int
}

// For returns the aggregate that answers part.
func (t Totals) For(part Part) (*big.Int, error) {
	switch part {
	case PartNumbers:
		return t.PartNumberSum, nil
	case GearRatios:
		return t.GearProductSum, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPart, int(part))
}

// Answer is the outcome of one Task. Err is set instead of Value when the task failed.
type Answer struct {
	Task        Task
	Value       string
	Err         error
	Elapsed     time.Duration
	InputSHA256 string
	Gears       []schematic.Gear
}

// Label identifies the run: "[mini, Part 1, t = 3ms]".
func (a Answer) Label() string {
	return fmt.Sprintf("[%s, %s, t = %dms]", a.Task.Variant, a.Task.Part, a.Elapsed.Milliseconds())
}

// Result is the answer value, or the error message of a failed run.
func (a Answer) Result() string {
	if a.Err != nil {
		return a.Err.Error()
	}
	return a.Value
}

func (a Answer) String() string {
	return a.Label() + ": " + a.Result()
}

// Solver parses inputs and computes answers.
type Solver struct {
	logger      *zap.Logger
	concurrency int
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the parent logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.logger = logging.For(l, logging.CategorySolver) }
}

// WithConcurrency bounds how many tasks Run solves at once. n <= 0 means no bound.
func WithConcurrency(n int) Option {
	return func(s *Solver) { s.concurrency = n }
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze computes both aggregates of g concurrently. The grid is only read.
func (s *Solver) Analyze(ctx context.Context, g *schematic.Grid) (Totals, error) {
	if err := ctx.Err(); err != nil {
		return Totals{}, err
	}

	var (
		t  Totals
		eg errgroup.Group
	)
	eg.Go(func() error {
		t.PartNumberSum = g.PartNumberSum()
		return nil
	})
	eg.Go(func() error {
		t.GearProductSum = g.GearProductSum()
		return nil
	})
	_ = eg.Wait()
	return t, nil
}

// Solve parses text and returns the decimal answer for part.
func (s *Solver) Solve(ctx context.Context, text string, part Part) (string, error) {
	v, _, err := s.evaluate(ctx, text, part)
	return v, err
}

// Run solves every task and returns the answers in task order. A failing task does
// not stop the others; its Answer carries the error.
func (s *Solver) Run(ctx context.Context, tasks []Task) []Answer {
	answers := make([]Answer, len(tasks))

	eg, egCtx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		eg.SetLimit(s.concurrency)
	}
	for i, task := range tasks {
		i, task := i, task // per-iteration copies; go directive is below 1.22
		eg.Go(func() error {
			answers[i] = s.runTask(egCtx, task)
			return nil
		})
	}
	_ = eg.Wait()

	return answers
}

func (s *Solver) runTask(ctx context.Context, task Task) Answer {
	answer := Answer{Task: task}
	log := s.logger.With(
		zap.Int("day", task.Day),
		zap.Stringer("part", task.Part),
		zap.String("variant", string(task.Variant)),
	)

	data, err := os.ReadFile(task.Path)
	if err != nil {
		answer.Err = fmt.Errorf("failed to read input: %w", err)
		log.Warn("input unavailable", zap.String("path", task.Path), zap.Error(err))
		return answer
	}
	sum := sha256.Sum256(data)
	answer.InputSHA256 = hex.EncodeToString(sum[:])

	timer := logging.StartTimer(log, "solve")
	start := time.Now()
	var g *schematic.Grid
	answer.Value, g, answer.Err = s.evaluate(ctx, string(data), task.Part)
	answer.Elapsed = time.Since(start)
	timer.StopWithThreshold(time.Second)

	if answer.Err != nil {
		log.Warn("task failed", zap.Error(answer.Err))
		return answer
	}
	if task.Part == GearRatios {
		answer.Gears = g.Gears()
	}
	log.Info("task solved", zap.String("answer", answer.Value), zap.Duration("elapsed", answer.Elapsed))
	return answer
}

// evaluate parses text once, computes both aggregates and picks the one for part.
func (s *Solver) evaluate(ctx context.Context, text string, part Part) (string, *schematic.Grid, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	g, err := schematic.Parse(text)
	if err != nil {
		return "", nil, err
	}
	totals, err := s.Analyze(ctx, g)
	if err != nil {
		return "", nil, err
	}
	v, err := totals.For(part)
	if err != nil {
		return "", nil, err
	}
	return v.String(), g, nil
}
