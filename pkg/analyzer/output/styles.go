package output

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FAFFF"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5FD787"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)
