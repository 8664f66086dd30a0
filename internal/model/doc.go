// Package model defines the core data structures shared by every coverquiz
// package.
//
// # Album
//
// Album is the value every album source produces and the round engine
// consumes:
//
//	album := model.Album{ID: "1", Name: "Abbey Road", CoverURL: coverURL}
//	if album.HasCover() { ... }
//
// # Difficulty
//
// Difficulty selects how covers are shown. Only Expert changes the picture
// (grayscale); Easy and Normal differ in name only.
//
//	d, err := model.ParseDifficulty("expert")
//	d.Grayscale() // true
//
// # Errors
//
// The sentinel errors (ErrAuth, ErrArtistNotFound, ErrInsufficientAlbums,
// ErrDecode, ErrNetwork) are wrapped with context by the packages that
// return them; classify with errors.Is.
package model
