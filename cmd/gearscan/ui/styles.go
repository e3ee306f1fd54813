// Package ui provides the terminal styling for gearscan output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Semantic colors
var (
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue
	Muted       = lipgloss.Color("#7a8599")
)

// Styles holds the styles used by the CLI.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Answer lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the default CLI styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(Info).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Muted),

		Answer: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive),

		Muted: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),
	}
}

// RenderHeader renders a section header such as "[Day 3]".
func (s Styles) RenderHeader(text string) string {
	return s.Header.Render(text)
}

// RenderResult renders one answer line: "[mini, Part 1, t = 3ms]: 4361".
func (s Styles) RenderResult(label, value string, failed bool) string {
	style := s.Answer
	if failed {
		style = s.Error
	}
	return s.Label.Render(label) + ": " + style.Render(value)
}

// RenderTable renders rows under a bold header inside a muted border.
func (s Styles) RenderTable(header []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header.Padding(0, 1)
			}
			return cell
		}).
		Headers(header...).
		Rows(rows...)
	return t.String() + "\n"
}
