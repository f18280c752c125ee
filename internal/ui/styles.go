package ui

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by every command. Lipgloss degrades colors based on
// terminal capabilities.
var (
	StyleGreen  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	StyleRed    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	StyleCyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	StyleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
