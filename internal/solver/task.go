package solver

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Part selects which aggregate answers the puzzle.
type Part int

const (
	// PartNumbers sums the numbers adjacent to any symbol.
	PartNumbers Part = 1
	// GearRatios sums the products of gear pairs.
	GearRatios Part = 2
)

func (p Part) String() string { return fmt.Sprintf("Part %d", int(p)) }

// ParsePart parses "1" or "2".
func ParsePart(s string) (Part, error) {
	n, err := strconv.Atoi(s)
	if err != nil || (Part(n) != PartNumbers && Part(n) != GearRatios) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
	}
	return Part(n), nil
}

// Variant distinguishes the published sample from the personal puzzle input.
type Variant string

const (
	Mini Variant = "mini"
	Full Variant = "full"
)

// ParseVariant parses "mini" or "full".
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Mini, Full:
		return Variant(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Task is one input file to be solved for one part.
type Task struct {
	Day     int
	Part    Part
	Variant Variant
	Path    string
}

// InputFileName returns the conventional file name for a day's input: DayNN.txt for
// the full input, DayNN_P.txt for the sample of part P.
func InputFileName(day int, part Part, v Variant) string {
	if v == Mini {
		return fmt.Sprintf("Day%02d_%d.txt", day, int(part))
	}
	return fmt.Sprintf("Day%02d.txt", day)
}

// Tasks returns the four runs of a day in display order: part 1 sample, part 1 full,
// part 2 sample, part 2 full.
func Tasks(dir string, day int) []Task {
	var tasks []Task
	for _, part := range []Part{PartNumbers, GearRatios} {
		for _, v := range []Variant{Mini, Full} {
			tasks = append(tasks, Task{
				Day:     day,
				Part:    part,
				Variant: v,
				Path:    filepath.Join(dir, InputFileName(day, part, v)),
			})
		}
	}
	return tasks
}

// Filter keeps the tasks matching part and variant. Zero values match everything.
func Filter(tasks []Task, part Part, v Variant) []Task {
	var out []Task
	for _, t := range tasks {
		if part != 0 && t.Part != part {
			continue
		}
		if v != "" && t.Variant != v {
			continue
		}
		out = append(out, t)
	}
	return out
}
