package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/coverquiz/internal/download"
	"github.com/handiism/coverquiz/internal/game"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5DADE2"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// toneStyle returns the style of a feedback tone.
func toneStyle(tone game.Tone) lipgloss.Style {
	switch tone {
	case game.TonePositive:
		return successStyle
	case game.ToneNegative:
		return errorStyle
	case game.ToneHighlight:
		return highlightStyle
	default:
		return infoStyle
	}
}

// levelStyle returns the style and prefix of a progress level.
func levelStyle(level download.ProgressLevel) (lipgloss.Style, string) {
	switch level {
	case download.LevelError:
		return errorStyle, "✗"
	case download.LevelWarning:
		return warningStyle, "!"
	case download.LevelSuccess:
		return successStyle, "✓"
	case download.LevelInfo:
		return infoStyle, "›"
	default:
		return dimStyle, "•"
	}
}
