package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/coverquiz/internal/game"
)

// feedbackLine is the transient message under the score.
//
// Every message bumps seq and schedules a clear carrying it; a clear whose
// seq is not the latest belongs to an older message and is ignored.
type feedbackLine struct {
	message string
	tone    game.Tone
	seq     int
}

// clearFeedbackMsg asks to clear feedback number seq.
type clearFeedbackMsg struct {
	seq int
}

// show replaces the message and returns the command that clears it.
func (f *feedbackLine) show(message string, tone game.Tone, delay time.Duration) tea.Cmd {
	f.seq++
	f.message = message
	f.tone = tone

	seq := f.seq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return clearFeedbackMsg{seq: seq}
	})
}

// clear removes the message if seq is still the latest.
func (f *feedbackLine) clear(seq int) {
	if seq == f.seq {
		f.message = ""
	}
}

func (f feedbackLine) View() string {
	if f.message == "" {
		return ""
	}
	return toneStyle(f.tone).Render(f.message)
}
