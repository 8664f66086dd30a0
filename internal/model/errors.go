package model

import "errors"

var (
	// ErrAuth is returned when credentials are missing or the token
	// exchange with the catalog fails.
	ErrAuth = errors.New("catalog authentication failed")

	// ErrArtistNotFound is returned when an artist search has no results.
	ErrArtistNotFound = errors.New("artist not found")

	// ErrInsufficientAlbums is returned when an artist has fewer than four
	// distinctly named albums, which is not enough to build answer options.
	ErrInsufficientAlbums = errors.New("not enough albums")

	// ErrDecode is returned when cover art bytes cannot be decoded.
	ErrDecode = errors.New("cannot decode cover art")

	// ErrNetwork is returned for transport-level failures.
	ErrNetwork = errors.New("network error")
)
