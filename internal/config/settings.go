package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables holding the catalog credentials.
const (
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog endpoints
	TokenURL   string `json:"token_url"`
	APIBaseURL string `json:"api_base_url"`
	MaxAlbums  int    `json:"max_albums"`

	// HTTP settings
	HTTPTimeoutSeconds          float64 `json:"http_timeout_seconds"`
	MaxConcurrentCoverDownloads int     `json:"max_concurrent_cover_downloads"`
	PrefetchCovers              bool    `json:"prefetch_covers"`
	CoverMaxRetries             int     `json:"cover_max_retries"`
	CoverRetryCooldown          float64 `json:"cover_retry_cooldown"`
	CoverRetryExponent          float64 `json:"cover_retry_exponent"`

	// Game rules
	WinThreshold    int     `json:"win_threshold"`
	FeedbackSeconds float64 `json:"feedback_seconds"`

	// Cover art settings
	PixelBlockSize int `json:"pixel_block_size"`
	DisplaySize    int `json:"display_size"`
	CoverColumns   int `json:"cover_columns"`

	// Storage
	HighScorePath string `json:"high_score_path"`
	LibraryPath   string `json:"library_path"` // empty: use the online catalog

	// Credentials are never written to the settings file.
	ClientID     string `json:"-"`
	ClientSecret string `json:"-"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		TokenURL:   "https://accounts.spotify.com/api/token",
		APIBaseURL: "https://api.spotify.com/v1",
		MaxAlbums:  10,

		HTTPTimeoutSeconds:          15,
		MaxConcurrentCoverDownloads: 4,
		PrefetchCovers:              true,
		CoverMaxRetries:             0,
		CoverRetryCooldown:          0.2,
		CoverRetryExponent:          4.0,

		WinThreshold:    3,
		FeedbackSeconds: 2,

		PixelBlockSize: 55,
		DisplaySize:    340,
		CoverColumns:   32,

		HighScorePath: "highscore.txt",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadCredentials fills ClientID and ClientSecret from the environment.
//
// If envFile is not empty it is loaded first; variables already present in
// the environment win over the file. A missing env file is not an error.
// Missing credentials are not reported here: authentication fails later
// with model.ErrAuth.
func (s *Settings) LoadCredentials(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	s.ClientID = os.Getenv(EnvClientID)
	s.ClientSecret = os.Getenv(EnvClientSecret)
	return nil
}

// HTTPTimeout returns the per-request timeout.
func (s *Settings) HTTPTimeout() time.Duration {
	if s.HTTPTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(s.HTTPTimeoutSeconds * float64(time.Second))
}

// FeedbackDelay returns how long a feedback message stays on screen.
func (s *Settings) FeedbackDelay() time.Duration {
	if s.FeedbackSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(s.FeedbackSeconds * float64(time.Second))
}

// RetryDelay returns the wait before retry number tries (0-based) of a
// cover download: cooldown * exponent^tries.
func (s *Settings) RetryDelay(tries int) time.Duration {
	cooldown := s.CoverRetryCooldown * math.Pow(s.CoverRetryExponent, float64(tries))
	if cooldown <= 0 {
		return 0
	}
	return time.Duration(cooldown * float64(time.Second))
}
