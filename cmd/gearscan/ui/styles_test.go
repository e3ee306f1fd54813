package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsWideCells(t *testing.T) {
	out := DefaultStyles().RenderTable(
		[]string{"DAY", "RESULT"},
		[][]string{
			{"3", "error: 1€2 is not a number"},
			{"3", "4361"},
			{"12", "467835"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 4)
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %d: %q", i, line)
	}

	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "1€2")
	assert.Contains(t, out, "467835")
}

func TestRenderResult(t *testing.T) {
	s := DefaultStyles()
	assert.Contains(t, s.RenderResult("[mini, Part 1, t = 0ms]", "4361", false), "4361")
	assert.Contains(t, s.RenderResult("[full, Part 2, t = 1ms]", "boom", true), "boom")
}
