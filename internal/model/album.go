package model

import "strings"

// Album is a single release returned by an album source.
//
// Album is a comparable value type: two albums are the same album when all
// three fields match. The round engine relies on this to avoid showing the
// same cover twice in a row.
//
// Example:
//
//	album := Album{
//	    ID:       "4aawyAB9vmqN3uQ7FjRGTy",
//	    Name:     "Global Warming",
//	    CoverURL: "https://i.scdn.co/image/ab67616d0000b273...",
//	}
type Album struct {
	// ID is the source-specific identifier of the album.
	ID string

	// Name is the album title shown as an answer option.
	Name string

	// CoverURL is where the cover art is downloaded from.
	// Local library albums use file:// URLs.
	CoverURL string
}

// HasCover returns true if the album has cover art available for download.
func (a Album) HasCover() bool {
	return a.CoverURL != ""
}

// Artist is the top search hit for an artist name.
type Artist struct {
	ID   string
	Name string
}

// DistinctNames returns the album names in first-seen order with duplicates
// (editions, reissues) removed.
func DistinctNames(albums []Album) []string {
	seen := make(map[string]struct{}, len(albums))
	names := make([]string, 0, len(albums))
	for _, album := range albums {
		if _, ok := seen[album.Name]; ok {
			continue
		}
		seen[album.Name] = struct{}{}
		names = append(names, album.Name)
	}
	return names
}

// SameArtist reports whether two artist names refer to the same artist,
// ignoring case and surrounding whitespace.
func SameArtist(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
