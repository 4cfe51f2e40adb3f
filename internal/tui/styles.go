// Package tui holds the lipgloss palette shared by the styled demo output and
// the interactive explorer.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Result styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	NoteStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Input styles
	InputLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(8)

	FocusedInputLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Width(8)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
