package game

import (
	"errors"
	"fmt"

	"github.com/handiism/coverquiz/internal/model"
)

// Feedback messages.
const (
	MsgEnterArtist   = "Please enter an artist name"
	MsgCorrect       = "Correct!"
	MsgIncorrect     = "Incorrect! Score reset. Try again."
	MsgWon           = "You won the game!"
	MsgNewHighScore  = "New High Score!"
	MsgNoMoreAlbums  = "No more albums available."
	MsgNotEnough     = "Not enough albums to play the game"
	MsgArtistMissing = "Artist not found"
	MsgAuthFailed    = "Could not authenticate with the music catalog"
	MsgBadCover      = "Could not read the album cover"
	MsgNetwork       = "Network error, please try again"
)

// FeedbackFor converts an error into the message shown to the player.
func FeedbackFor(err error) string {
	switch {
	case errors.Is(err, model.ErrAuth):
		return MsgAuthFailed
	case errors.Is(err, model.ErrArtistNotFound):
		return MsgArtistMissing
	case errors.Is(err, model.ErrInsufficientAlbums):
		return MsgNotEnough
	case errors.Is(err, model.ErrDecode):
		return MsgBadCover
	case errors.Is(err, model.ErrNetwork):
		return MsgNetwork
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

func negative(message string) ShowFeedback {
	return ShowFeedback{Message: message, Tone: ToneNegative}
}
