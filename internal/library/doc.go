// Package library provides an offline album source backed by a directory
// of audio files.
//
// The library walks a directory, reads each supported file's tags and
// groups the files of one artist into albums. Cover art is the picture
// embedded in the files.
//
// # Tag Readers
//
//   - MP3: ID3v2 frames TPE1, TPE2, TALB and APIC via bogem/id3v2
//   - FLAC, MP4/M4A, OGG: dhowden/tag
//
// # Usage
//
//	lib, err := library.Open("/music", 10)
//	albums, err := lib.LoadAlbums(ctx, "Boards of Canada")
//	cover, err := lib.FetchCover(ctx, albums[0])
package library
