package model

import (
	"fmt"
	"strings"
)

// Difficulty is the game difficulty chosen on the menu.
type Difficulty int

const (
	// DifficultyEasy shows the pixelated cover in color.
	DifficultyEasy Difficulty = iota

	// DifficultyNormal shows the pixelated cover in color.
	DifficultyNormal

	// DifficultyExpert shows the pixelated cover in grayscale.
	DifficultyExpert
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyExpert}

// String returns the menu label of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyExpert:
		return "Expert"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Grayscale reports whether covers are shown without color.
func (d Difficulty) Grayscale() bool {
	return d == DifficultyExpert
}

// Next returns the following difficulty, wrapping around after Expert.
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(Difficulties))
}

// Prev returns the preceding difficulty, wrapping around before Easy.
func (d Difficulty) Prev() Difficulty {
	return Difficulty((int(d) + len(Difficulties) - 1) % len(Difficulties))
}

// ParseDifficulty parses a difficulty label, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "expert":
		return DifficultyExpert, nil
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q (want easy, normal or expert)", s)
}
