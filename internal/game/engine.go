package game

import (
	"math/rand/v2"
	"strings"

	"github.com/handiism/coverquiz/internal/model"
)

// DefaultWinThreshold is the score that wins a game.
const DefaultWinThreshold = 3

// optionCount is the number of answer names offered per round.
const optionCount = 4

// Engine applies commands to sessions.
//
// Engine holds no session state. Its only state is the random source used
// to pick albums and order options, which makes it safe to share only from
// a single goroutine.
type Engine struct {
	rng          *rand.Rand
	winThreshold int
}

// NewEngine creates an Engine. A nil rng is replaced by a randomly seeded
// source; a threshold below 1 by DefaultWinThreshold.
func NewEngine(winThreshold int, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if winThreshold < 1 {
		winThreshold = DefaultWinThreshold
	}
	return &Engine{rng: rng, winThreshold: winThreshold}
}

// WinThreshold returns the score that wins a game.
func (e *Engine) WinThreshold() int {
	return e.winThreshold
}

// Handle applies cmd to s and returns the next session plus the effects the
// caller must run, in order. Commands that do not apply to the current
// phase leave the session unchanged and produce no effects.
func (e *Engine) Handle(s Session, cmd Command) (Session, []Effect) {
	switch cmd := cmd.(type) {
	case SelectDifficulty:
		if s.Phase == PhaseMenu {
			s.Difficulty = cmd.Difficulty
		}
		return s, nil

	case StartGame:
		return e.startGame(s, cmd)

	case AlbumsLoaded:
		return e.albumsLoaded(s, cmd)

	case SubmitAnswer:
		return e.submitAnswer(s, cmd)

	case CoverFailed:
		if s.Phase != PhasePlaying || cmd.Album != s.Current {
			return s, nil
		}
		return resetToMenu(s), []Effect{negative(FeedbackFor(cmd.Err))}

	case ReturnToMenu:
		if s.Phase == PhaseMenu {
			return s, nil
		}
		return resetToMenu(s), nil
	}

	return s, nil
}

func (e *Engine) startGame(s Session, cmd StartGame) (Session, []Effect) {
	if s.Phase != PhaseMenu {
		return s, nil
	}

	artist := strings.TrimSpace(cmd.Artist)
	if artist == "" {
		return s, []Effect{negative(MsgEnterArtist)}
	}

	s.Phase = PhaseLoading
	s.Outcome = OutcomeNone
	s.Artist = artist
	return s, []Effect{FetchAlbums{Artist: artist}}
}

func (e *Engine) albumsLoaded(s Session, cmd AlbumsLoaded) (Session, []Effect) {
	// Results for an abandoned request are stale.
	if s.Phase != PhaseLoading || cmd.Artist != s.Artist {
		return s, nil
	}

	if cmd.Err != nil {
		return resetToMenu(s), []Effect{negative(FeedbackFor(cmd.Err))}
	}
	if len(model.DistinctNames(cmd.Albums)) < optionCount {
		return resetToMenu(s), []Effect{negative(FeedbackFor(model.ErrInsufficientAlbums))}
	}

	s.Phase = PhasePlaying
	s.Albums = cmd.Albums
	s.Score = 0
	s.Current = model.Album{}
	s.Previous = model.Album{}
	return e.startRound(s, nil)
}

func (e *Engine) submitAnswer(s Session, cmd SubmitAnswer) (Session, []Effect) {
	if s.Phase != PhasePlaying {
		return s, nil
	}

	var effects []Effect
	if cmd.Name == s.Current.Name {
		s.Score++
		s.Outcome = OutcomeCorrect
		effects = append(effects, ShowFeedback{Message: MsgCorrect, Tone: TonePositive})
	} else {
		s.Score = 0
		s.Outcome = OutcomeIncorrect
		effects = append(effects, negative(MsgIncorrect))
	}

	return e.startRound(s, effects)
}

// startRound checks for a win, then picks the next album and its options.
func (e *Engine) startRound(s Session, effects []Effect) (Session, []Effect) {
	if s.Score >= e.winThreshold {
		s.Outcome = OutcomeWon
		effects = append(effects, ShowFeedback{Message: MsgWon, Tone: TonePositive})
		if s.Score > s.HighScore {
			s.HighScore = s.Score
			effects = append(effects,
				SaveHighScore{Score: s.Score},
				ShowFeedback{Message: MsgNewHighScore, Tone: ToneHighlight},
			)
		}
		return resetToMenu(s), effects
	}

	if len(s.Albums) == 0 {
		return resetToMenu(s), append(effects, negative(MsgNoMoreAlbums))
	}

	current := e.pickAlbum(s.Albums, s.Current)
	options, ok := e.buildOptions(s.Albums, current)
	if !ok {
		return resetToMenu(s), append(effects, negative(MsgNotEnough))
	}

	s.Previous = s.Current
	s.Current = current
	s.Options = options
	return s, append(effects, LoadCover{Album: current, Grayscale: s.Grayscale()})
}

// pickAlbum returns a random album whose name differs from previous. If
// every album carries that name, any album other than previous is taken;
// if every album equals previous, previous itself is returned.
func (e *Engine) pickAlbum(albums []model.Album, previous model.Album) model.Album {
	var otherName, otherAlbum []model.Album
	for _, album := range albums {
		if album == previous {
			continue
		}
		otherAlbum = append(otherAlbum, album)
		if album.Name != previous.Name {
			otherName = append(otherName, album)
		}
	}

	candidates := otherName
	if len(candidates) == 0 {
		candidates = otherAlbum
	}
	if len(candidates) == 0 {
		candidates = albums
	}
	return candidates[e.rng.IntN(len(candidates))]
}

// buildOptions samples three wrong names without replacement, adds the
// right one and shuffles.
func (e *Engine) buildOptions(albums []model.Album, current model.Album) ([]string, bool) {
	var wrong []string
	for _, name := range model.DistinctNames(albums) {
		if name != current.Name {
			wrong = append(wrong, name)
		}
	}
	if len(wrong) < optionCount-1 {
		return nil, false
	}

	// Partial Fisher-Yates: the first optionCount-1 entries become the sample.
	for i := 0; i < optionCount-1; i++ {
		j := i + e.rng.IntN(len(wrong)-i)
		wrong[i], wrong[j] = wrong[j], wrong[i]
	}

	options := make([]string, 0, optionCount)
	options = append(options, wrong[:optionCount-1]...)
	options = append(options, current.Name)
	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, true
}

func resetToMenu(s Session) Session {
	s.Phase = PhaseMenu
	s.Score = 0
	s.Albums = nil
	s.Current = model.Album{}
	s.Previous = model.Album{}
	s.Options = nil
	return s
}
