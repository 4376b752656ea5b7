// Package tui provides an interactive terminal front end for launching
// new instances.
//
// The TUI uses Bubble Tea for the application framework and Lipgloss for
// styling. It shows the active launch strategy, running success/failure
// counts, and a scrolling history of launch outcomes.
package tui

import "github.com/charmbracelet/lipgloss"

// Colors based on a modern dark theme
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorError   = lipgloss.Color("#EF4444") // Red

	colorText      = lipgloss.Color("#E5E7EB") // Light gray
	colorTextMuted = lipgloss.Color("#9CA3AF") // Medium gray
	colorBorder    = lipgloss.Color("#374151") // Border gray
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(1, 1, 0, 1)
)
