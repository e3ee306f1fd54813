package solver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gearscan/internal/schematic"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestSolve(t *testing.T) {
	s := New()
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		part  Part
		want  string
	}{
		{name: "sample part 1", input: sample, part: PartNumbers, want: "4361"},
		{name: "sample part 2", input: sample, part: GearRatios, want: "467835"},
		{name: "single row part 1", input: "12*34", part: PartNumbers, want: "46"},
		{name: "single row part 2", input: "12*34", part: GearRatios, want: "408"},
		{name: "crlf", input: strings.ReplaceAll(sample, "\n", "\r\n"), part: PartNumbers, want: "4361"},
		{name: "wide gear", input: "9999999999*9999999999", part: GearRatios, want: "99999999980000000001"},
		{name: "wide part sum", input: "9000000000000000000*9000000000000000000", part: PartNumbers, want: "18000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Solve(ctx, tt.input, tt.part)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	s := New()

	_, err := s.Solve(context.Background(), "..\n...", PartNumbers)
	assert.True(t, errors.Is(err, schematic.ErrIrregularGrid))

	_, err = s.Solve(context.Background(), "1*2", Part(3))
	assert.True(t, errors.Is(err, ErrUnknownPart))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Solve(ctx, "1*2", PartNumbers)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAnalyze(t *testing.T) {
	s := New()
	g := schematic.MustParse(sample)

	totals, err := s.Analyze(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, "4361", totals.PartNumberSum.String())
	assert.Equal(t, "467835", totals.GearProductSum.String())

	again, err := s.Analyze(context.Background(), g)
	require.NoError(t, err)
	assert.Zero(t, totals.PartNumberSum.Cmp(again.PartNumberSum))
	assert.Zero(t, totals.GearProductSum.Cmp(again.GearProductSum))

	v, err := totals.For(GearRatios)
	require.NoError(t, err)
	assert.Equal(t, "467835", v.String())
	_, err = totals.For(Part(0))
	assert.True(t, errors.Is(err, ErrUnknownPart))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Analyze(ctx, g)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTasks(t *testing.T) {
	got := Tasks("in", 3)

	want := []Task{
		{Day: 3, Part: PartNumbers, Variant: Mini, Path: filepath.Join("in", "Day03_1.txt")},
		{Day: 3, Part: PartNumbers, Variant: Full, Path: filepath.Join("in", "Day03.txt")},
		{Day: 3, Part: GearRatios, Variant: Mini, Path: filepath.Join("in", "Day03_2.txt")},
		{Day: 3, Part: GearRatios, Variant: Full, Path: filepath.Join("in", "Day03.txt")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tasks mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, Filter(got, GearRatios, ""), 2)
	assert.Len(t, Filter(got, 0, Full), 2)
	assert.Len(t, Filter(got, PartNumbers, Mini), 1)
	assert.Len(t, Filter(got, 0, ""), 4)
}

func TestParsePartAndVariant(t *testing.T) {
	p, err := ParsePart("2")
	require.NoError(t, err)
	assert.Equal(t, GearRatios, p)

	_, err = ParsePart("3")
	assert.True(t, errors.Is(err, ErrUnknownPart))

	v, err := ParseVariant("mini")
	require.NoError(t, err)
	assert.Equal(t, Mini, v)

	_, err = ParseVariant("huge")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestRun(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"Day03_1.txt": sample,
		"Day03_2.txt": sample,
		"Day03.txt":   "12*34\n",
	})

	for _, concurrency := range []int{0, 1, 3} {
		core, logs := observer.New(zapcore.InfoLevel)
		s := New(WithLogger(zap.New(core)), WithConcurrency(concurrency))

		answers := s.Run(context.Background(), Tasks(dir, 3))
		require.Len(t, answers, 4)

		var values []string
		for _, a := range answers {
			require.NoError(t, a.Err)
			assert.Len(t, a.InputSHA256, 64)
			values = append(values, a.Value)
		}
		assert.Equal(t, []string{"4361", "46", "467835", "408"}, values, "concurrency %d", concurrency)

		assert.Len(t, answers[2].Gears, 2)
		assert.Len(t, answers[3].Gears, 1)
		assert.Nil(t, answers[0].Gears)

		assert.Equal(t, 4, logs.FilterMessage("task solved").Len())
	}
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"Day03_1.txt": sample,
		"Day03.txt":   "...\n..\n",
	})

	answers := New().Run(context.Background(), Tasks(dir, 3))
	require.Len(t, answers, 4)

	assert.NoError(t, answers[0].Err)
	assert.Equal(t, "4361", answers[0].Value)

	assert.True(t, errors.Is(answers[1].Err, schematic.ErrIrregularGrid))
	assert.True(t, errors.Is(answers[2].Err, os.ErrNotExist))
	assert.True(t, errors.Is(answers[3].Err, schematic.ErrIrregularGrid))
}

func TestAnswer_String(t *testing.T) {
	a := Answer{Task: Task{Part: PartNumbers, Variant: Mini}, Value: "4361"}
	assert.Equal(t, "[mini, Part 1, t = 0ms]: 4361", a.String())

	a.Err = errors.New("boom")
	assert.Equal(t, "[mini, Part 1, t = 0ms]: boom", a.String())
}
