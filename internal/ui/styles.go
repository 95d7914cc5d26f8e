// Shared lipgloss styles for user-facing status text.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))
)

// Heading renders bold text for section headers.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Success renders green status text.
func Success(s string) string {
	return successStyle.Render(s)
}

// Warning renders yellow status text.
func Warning(s string) string {
	return warningStyle.Render(s)
}

// Error renders red status text.
func Error(s string) string {
	return errorStyle.Render(s)
}
