package game

import "github.com/handiism/coverquiz/internal/model"

// Command is an input to Engine.Handle.
type Command interface {
	isCommand()
}

// SelectDifficulty changes the difficulty on the menu.
type SelectDifficulty struct {
	Difficulty model.Difficulty
}

// StartGame asks for the albums of Artist.
type StartGame struct {
	Artist string
}

// AlbumsLoaded delivers the result of a FetchAlbums effect.
type AlbumsLoaded struct {
	Artist string
	Albums []model.Album
	Err    error
}

// SubmitAnswer is the player's pick among the options.
type SubmitAnswer struct {
	Name string
}

// CoverFailed reports that the cover of Album could not be shown.
type CoverFailed struct {
	Album model.Album
	Err   error
}

// ReturnToMenu abandons the current game.
type ReturnToMenu struct{}

func (SelectDifficulty) isCommand() {}
func (StartGame) isCommand()        {}
func (AlbumsLoaded) isCommand()     {}
func (SubmitAnswer) isCommand()     {}
func (CoverFailed) isCommand()      {}
func (ReturnToMenu) isCommand()     {}

// Effect is work the engine asks its caller to perform.
type Effect interface {
	isEffect()
}

// Tone selects how a feedback message is styled.
type Tone int

const (
	ToneInfo Tone = iota
	TonePositive
	ToneNegative
	ToneHighlight
)

// ShowFeedback displays a transient message.
type ShowFeedback struct {
	Message string
	Tone    Tone
}

// FetchAlbums loads the albums of Artist and answers with AlbumsLoaded.
type FetchAlbums struct {
	Artist string
}

// LoadCover downloads, pixelates and shows the cover of Album. A failure
// is answered with CoverFailed.
type LoadCover struct {
	Album     model.Album
	Grayscale bool
}

// SaveHighScore persists a new high score.
type SaveHighScore struct {
	Score int
}

func (ShowFeedback) isEffect()  {}
func (FetchAlbums) isEffect()   {}
func (LoadCover) isEffect()     {}
func (SaveHighScore) isEffect() {}
