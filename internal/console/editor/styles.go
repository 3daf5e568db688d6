package editor

import "github.com/charmbracelet/lipgloss"

var (
	colorPrompt     = lipgloss.Color("#06B6D4") // Cyan
	colorSuggestion = lipgloss.Color("#6B7280") // Gray

	promptStyle     = lipgloss.NewStyle().Foreground(colorPrompt).Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(colorSuggestion)
)
