package game

import (
	"fmt"

	"github.com/handiism/coverquiz/internal/model"
)

// Phase is the screen the session is on.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLoading
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	default:
		return "menu"
	}
}

// Outcome records how the last round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeWon
)

// Session is the complete state of one player's game.
//
// Session is a value: the Engine takes one and returns the next. Albums is
// shared between copies and never modified in place.
type Session struct {
	Phase      Phase
	Outcome    Outcome
	Artist     string
	Difficulty model.Difficulty

	// Albums is the album list of the current game, empty outside PLAYING.
	Albums []model.Album

	Score     int
	HighScore int

	// Current is the album whose cover is on screen; Previous the one
	// before it. The zero Album means none.
	Current  model.Album
	Previous model.Album

	// Options holds the four answer names of the current round.
	Options []string
}

// NewSession returns a session on the menu with the stored high score.
func NewSession(highScore int) Session {
	return Session{
		Phase:      PhaseMenu,
		Difficulty: model.DifficultyEasy,
		HighScore:  highScore,
	}
}

// Grayscale reports whether covers of this session are shown without color.
func (s Session) Grayscale() bool {
	return s.Difficulty.Grayscale()
}

// ScoreLine renders the score readout.
func ScoreLine(s Session) string {
	return fmt.Sprintf("Score: %d | High Score: %d", s.Score, s.HighScore)
}
