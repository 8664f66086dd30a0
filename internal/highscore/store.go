package highscore

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store persists the high score as a decimal integer in a text file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored high score.
//
// A missing, unreadable or corrupt file counts as no high score yet and
// yields 0, as does a negative value.
func (s *Store) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// Save overwrites the file with score.
func (s *Store) Save(score int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0644)
}

// Reset removes the stored high score.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
