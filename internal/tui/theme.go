package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// theme holds the styles for one color scheme.
type theme struct {
	name    string
	title   lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	help    lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	frame   lipgloss.Style
	table   table.Styles
}

func lightTheme() theme {
	accent := lipgloss.Color("#4CAF50")
	border := lipgloss.Color("#ccc")
	fg := lipgloss.Color("#222222")
	bg := lipgloss.Color("#f0f0f0")
	return newTheme("light", fg, bg, accent, border)
}

func darkTheme() theme {
	accent := lipgloss.Color("#66BB6A")
	border := lipgloss.Color("#555555")
	fg := lipgloss.Color("#eeeeee")
	bg := lipgloss.Color("#333333")
	return newTheme("dark", fg, bg, accent, border)
}

func newTheme(name string, fg, bg, accent, border lipgloss.Color) theme {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		BorderBottom(true).
		Bold(true).
		Foreground(fg)
	ts.Cell = ts.Cell.Foreground(fg)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(accent).
		Bold(false)

	return theme{
		name:    name,
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		label:   lipgloss.NewStyle().Foreground(fg).Width(13),
		focused: lipgloss.NewStyle().Foreground(accent).Bold(true).Width(13),
		help:    lipgloss.NewStyle().Foreground(border).MarginTop(1),
		status:  lipgloss.NewStyle().Foreground(accent),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")),
		frame: lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Padding(1, 2),
		table: ts,
	}
}
