// Package tui provides a Bubble Tea terminal user interface for coverquiz.
package tui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/coverquiz/internal/config"
	"github.com/handiism/coverquiz/internal/download"
	"github.com/handiism/coverquiz/internal/game"
	ioutils "github.com/handiism/coverquiz/internal/io"
	"github.com/handiism/coverquiz/internal/model"
)

// Source loads albums and their cover art.
type Source interface {
	LoadAlbums(ctx context.Context, artist string) ([]model.Album, error)
	FetchCover(ctx context.Context, album model.Album) ([]byte, error)
}

// HighScoreStore persists the high score.
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// LogEntry represents a prefetch log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// maxLogs is how many prefetch messages the game view keeps.
const maxLogs = 3

// Model is the Bubble Tea model for the TUI.
type Model struct {
	session game.Session
	engine  *game.Engine

	settings *config.Settings
	source   Source
	store    HighScoreStore
	images   *ioutils.ImageService

	textInput textinput.Model
	spinner   spinner.Model
	feedback  feedbackLine
	logs      []LogEntry

	// onProgress receives prefetch events from worker goroutines.
	onProgress func(download.ProgressEvent)

	// Cover of session.Current, rendered; empty while it loads.
	cover string
	// Prefetched cover bytes by album ID.
	covers map[string][]byte
	// Highlighted answer for arrow-key selection.
	cursor int

	// Game context, cancelled when the player leaves a game. gen tags
	// async results so that those of an abandoned game are dropped.
	ctx    context.Context
	cancel context.CancelFunc
	gen    int

	width  int
	height int
}

// NewModel creates a new TUI model.
//
// A nil engine is replaced by one using settings.WinThreshold.
func NewModel(settings *config.Settings, source Source, store HighScoreStore, engine *game.Engine) Model {
	if engine == nil {
		engine = game.NewEngine(settings.WinThreshold, nil)
	}

	ti := textinput.New()
	ti.Placeholder = "Artist name"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		session:   game.NewSession(store.Load()),
		engine:    engine,
		settings:  settings,
		source:    source,
		store:     store,
		images:    ioutils.NewImageService(),
		textInput: ti,
		spinner:   sp,
		covers:    make(map[string][]byte),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Session returns the current game session.
func (m Model) Session() game.Session {
	return m.session
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// albumsLoadedMsg is sent when the album source answers request Gen.
	albumsLoadedMsg struct {
		Gen    int
		Artist string
		Albums []model.Album
		Err    error
	}

	// coverLoadedMsg carries a rendered cover and its source bytes, or the
	// reason it failed.
	coverLoadedMsg struct {
		Album    model.Album
		Data     []byte
		Rendered string
		Err      error
	}

	// coversPrefetchedMsg carries the prefetched covers of game Gen.
	coversPrefetchedMsg struct {
		Gen    int
		Covers map[string][]byte
	}

	// highScoreSavedMsg reports the result of a SaveHighScore effect.
	highScoreSavedMsg struct {
		Err error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case albumsLoadedMsg:
		// Answers to a request made before the player left LOADING are stale,
		// even when the same artist was asked for again.
		if msg.Gen != m.gen {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.apply(game.AlbumsLoaded{Artist: msg.Artist, Albums: msg.Albums, Err: msg.Err})
		cmds = append(cmds, cmd)
		if m.session.Phase == game.PhasePlaying && m.settings.PrefetchCovers {
			cmds = append(cmds, m.prefetchCovers())
		}

	case coverLoadedMsg:
		// A cover for an album no longer on screen is stale.
		if m.session.Phase != game.PhasePlaying || msg.Album != m.session.Current {
			return m, nil
		}
		if msg.Err != nil {
			log.Printf("cover of %q: %v", msg.Album.Name, msg.Err)
			return m.apply(game.CoverFailed{Album: msg.Album, Err: msg.Err})
		}
		m.cover = msg.Rendered
		if msg.Data != nil {
			m.covers[msg.Album.ID] = msg.Data
		}

	case coversPrefetchedMsg:
		if msg.Gen != m.gen || m.session.Phase != game.PhasePlaying {
			return m, nil
		}
		for id, data := range msg.Covers {
			if _, ok := m.covers[id]; !ok {
				m.covers[id] = data
			}
		}

	case progressMsg:
		m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case clearFeedbackMsg:
		m.feedback.clear(msg.seq)

	case highScoreSavedMsg:
		if msg.Err != nil {
			log.Printf("save high score: %v", msg.Err)
			cmds = append(cmds, m.feedback.show("Could not save the high score", game.ToneNegative, m.settings.FeedbackDelay()))
		}
	}

	// Update text input
	if m.session.Phase == game.PhaseMenu {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "esc":
		if m.session.Phase == game.PhaseMenu {
			m.cancel()
			return m, tea.Quit
		}
		return m.apply(game.ReturnToMenu{})
	}

	switch m.session.Phase {
	case game.PhaseMenu:
		switch msg.String() {
		case "tab":
			return m.apply(game.SelectDifficulty{Difficulty: m.session.Difficulty.Next()})
		case "shift+tab":
			return m.apply(game.SelectDifficulty{Difficulty: m.session.Difficulty.Prev()})
		case "enter":
			return m.apply(game.StartGame{Artist: m.textInput.Value()})
		}

		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case game.PhasePlaying:
		options := m.session.Options
		switch key := msg.String(); key {
		case "1", "2", "3", "4":
			i := int(key[0] - '1')
			if i < len(options) {
				return m.apply(game.SubmitAnswer{Name: options[i]})
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(options)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(options) {
				return m.apply(game.SubmitAnswer{Name: options[m.cursor]})
			}
		}
	}

	return m, nil
}

// apply runs cmd through the engine and turns its effects into commands.
func (m Model) apply(cmd game.Command) (Model, tea.Cmd) {
	before := m.session.Phase
	var effects []game.Effect
	m.session, effects = m.engine.Handle(m.session, cmd)

	if before != game.PhaseMenu && m.session.Phase == game.PhaseMenu {
		m.leaveGame()
	}

	var cmds []tea.Cmd
	for _, effect := range effects {
		switch effect := effect.(type) {
		case game.ShowFeedback:
			cmds = append(cmds, m.feedback.show(effect.Message, effect.Tone, m.settings.FeedbackDelay()))

		case game.FetchAlbums:
			m.gen++
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.textInput.Blur()
			cmds = append(cmds, m.loadAlbums(effect.Artist), m.spinner.Tick)

		case game.LoadCover:
			m.cover = ""
			m.cursor = 0
			cmds = append(cmds, m.loadCover(effect.Album, effect.Grayscale))

		case game.SaveHighScore:
			cmds = append(cmds, m.saveHighScore(effect.Score))
		}
	}

	return m, tea.Batch(cmds...)
}

// leaveGame drops everything that belongs to the game just left.
func (m *Model) leaveGame() {
	m.cancel()
	m.cover = ""
	m.cursor = 0
	m.covers = make(map[string][]byte)
	m.logs = nil
	m.textInput.Focus()
}

// loadAlbums fetches the artist's albums off the update loop.
func (m Model) loadAlbums(artist string) tea.Cmd {
	ctx, gen, source := m.ctx, m.gen, m.source
	return func() tea.Msg {
		albums, err := source.LoadAlbums(ctx, artist)
		if err != nil {
			log.Printf("load albums of %q: %v", artist, err)
		}
		return albumsLoadedMsg{Gen: gen, Artist: artist, Albums: albums, Err: err}
	}
}

// loadCover fetches (or takes from the prefetch cache), pixelates and
// renders the cover of album.
func (m Model) loadCover(album model.Album, grayscale bool) tea.Cmd {
	ctx, source, images, settings := m.ctx, m.source, m.images, m.settings
	cached := m.covers[album.ID]

	return func() tea.Msg {
		data := cached
		if data == nil {
			var err error
			data, err = source.FetchCover(ctx, album)
			if err != nil {
				return coverLoadedMsg{Album: album, Err: err}
			}
		}

		img, err := images.Pixelate(data, settings.PixelBlockSize, grayscale)
		if err != nil {
			return coverLoadedMsg{Album: album, Err: err}
		}
		img = images.Present(img, settings.DisplaySize)

		return coverLoadedMsg{Album: album, Data: data, Rendered: RenderCover(img, settings.CoverColumns)}
	}
}

// prefetchCovers downloads every cover of the current game except the one
// already being loaded for the first round.
func (m Model) prefetchCovers() tea.Cmd {
	ctx, gen := m.ctx, m.gen
	albums := make([]model.Album, 0, len(m.session.Albums))
	for _, album := range m.session.Albums {
		if album.ID != m.session.Current.ID {
			albums = append(albums, album)
		}
	}
	onProgress := m.onProgress
	prefetcher := download.NewPrefetcher(m.settings, m.source, func(event download.ProgressEvent) {
		log.Printf("[%s] %s", event.Level, event.Message)
		if onProgress != nil && event.Level != download.LevelVerbose {
			onProgress(event)
		}
	})

	return func() tea.Msg {
		covers, err := prefetcher.Prefetch(ctx, albums)
		if err != nil {
			log.Printf("prefetch covers: %v", err)
		}
		return coversPrefetchedMsg{Gen: gen, Covers: covers}
	}
}

func (m Model) saveHighScore(score int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return highScoreSavedMsg{Err: store.Save(score)}
	}
}

// progressMsg forwards a prefetch progress event to the view.
type progressMsg struct {
	Event download.ProgressEvent
}

// Run starts the TUI application.
func Run(settings *config.Settings, source Source, store HighScoreStore) error {
	var p *tea.Program

	m := NewModel(settings, source, store, nil)
	m.onProgress = func(event download.ProgressEvent) {
		p.Send(progressMsg{Event: event})
	}

	p = tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
