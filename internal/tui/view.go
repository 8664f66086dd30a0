package tui

import (
	"fmt"
	"strings"

	"github.com/handiism/coverquiz/internal/game"
	"github.com/handiism/coverquiz/internal/model"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("▚ Cover Quiz"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Guess the album from its pixelated cover"))
	b.WriteString("\n\n")

	switch m.session.Phase {
	case game.PhaseMenu:
		b.WriteString(m.viewMenu())
	case game.PhaseLoading:
		b.WriteString(m.viewLoading())
	case game.PhasePlaying:
		b.WriteString(m.viewGame())
	}

	// Score and feedback are visible on every screen.
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(game.ScoreLine(m.session)))
	b.WriteString("\n")
	b.WriteString(m.feedback.View())
	b.WriteString("\n\n")

	// Footer
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Artist:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Difficulty:"))
	b.WriteString("\n")
	for _, d := range model.Difficulties {
		if d == m.session.Difficulty {
			b.WriteString(selectedStyle.Render(fmt.Sprintf("  ● %s", d)))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ○ %s", d)))
		}
		b.WriteString("\n")
	}
	if m.session.Difficulty.Grayscale() {
		b.WriteString(dimStyle.Render("  covers are shown in grayscale"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Loading albums of %s...", m.session.Artist)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewGame() string {
	var b strings.Builder

	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · %s", m.session.Artist, m.session.Difficulty)))
	b.WriteString("\n")

	if m.cover == "" {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading cover..."))
	} else {
		b.WriteString(boxStyle.Render(m.cover))
	}
	b.WriteString("\n\n")

	for i, option := range m.session.Options {
		line := fmt.Sprintf("%d. %s", i+1, option)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, entry := range m.logs {
		style, prefix := levelStyle(entry.Level)
		b.WriteString(style.Render(prefix + " " + entry.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.session.Phase {
	case game.PhaseMenu:
		return "enter: start • tab/shift+tab: difficulty • esc: quit"
	case game.PhaseLoading:
		return "esc: back to menu"
	case game.PhasePlaying:
		return "1-4: answer • ↑/↓ + enter: select • esc: back to menu"
	}
	return ""
}
