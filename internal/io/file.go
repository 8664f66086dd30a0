package ioutils

import (
	"os"
	"regexp"
	"strings"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	repeatedSpaces   = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Leading and trailing whitespace → removed
//
// An empty result becomes "_" so the name is always usable.
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func SanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	if name == "" {
		return "_"
	}
	return name
}

// EnsureDir creates a directory and all parent directories if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
