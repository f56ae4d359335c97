package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 2)

	stepPendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#555555"))

	stepRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	stepOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	stepWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	stepFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444"))

	stepSkipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Padding(0, 4)

	warnDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Padding(0, 4)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Padding(0, 2)

	summaryFailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF4444")).
				Padding(0, 2)

	hotkeysStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Padding(0, 2)
)
