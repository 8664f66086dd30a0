package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"

	"github.com/handiism/coverquiz/internal/model"
)

// TrackInfo holds the tag fields the library needs from one audio file.
type TrackInfo struct {
	// Artist is the TPE1 (Lead artist) frame or its equivalent.
	Artist string

	// AlbumArtist is the TPE2 (Album artist) frame or its equivalent.
	AlbumArtist string

	// Album is the TALB (Album title) frame or its equivalent.
	Album string

	// HasPicture is true if the file embeds cover art.
	HasPicture bool
}

// Supported reports whether the file extension is one the library reads.
//
// MP3 files are read with id3v2; FLAC, MP4/M4A and OGG with the generic
// tag reader.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac", ".m4a", ".mp4", ".ogg":
		return true
	}
	return false
}

// ReadTrack reads the artist, album and picture presence of a file.
func ReadTrack(path string) (TrackInfo, error) {
	if isMP3(path) {
		return readID3(path)
	}
	return readGeneric(path)
}

// ReadPicture returns the embedded cover art of a file.
//
// For MP3 files a front cover picture is preferred over other picture
// types. Returns an error wrapping model.ErrDecode if there is none.
func ReadPicture(path string) ([]byte, error) {
	var (
		picture []byte
		err     error
	)
	if isMP3(path) {
		picture, err = readID3Picture(path)
	} else {
		picture, err = readGenericPicture(path)
	}
	if err != nil {
		return nil, err
	}

	if len(picture) == 0 {
		return nil, fmt.Errorf("%w: no picture in %s", model.ErrDecode, filepath.Base(path))
	}
	return picture, nil
}

func isMP3(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mp3")
}

func readID3(path string) (TrackInfo, error) {
	id3Tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return TrackInfo{}, err
	}
	defer id3Tag.Close()

	return TrackInfo{
		Artist:      id3Tag.Artist(),
		AlbumArtist: id3Tag.GetTextFrame(id3Tag.CommonID("Band/Orchestra/Accompaniment")).Text,
		Album:       id3Tag.Album(),
		HasPicture:  len(id3Pictures(id3Tag)) > 0,
	}, nil
}

func readID3Picture(path string) ([]byte, error) {
	id3Tag, err := id3v2.Open(path, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Attached picture"},
	})
	if err != nil {
		return nil, err
	}
	defer id3Tag.Close()

	pictures := id3Pictures(id3Tag)
	for _, pic := range pictures {
		if pic.PictureType == id3v2.PTFrontCover {
			return pic.Picture, nil
		}
	}
	if len(pictures) > 0 {
		return pictures[0].Picture, nil
	}
	return nil, nil
}

// id3Pictures returns the APIC frames of a tag.
func id3Pictures(id3Tag *id3v2.Tag) []id3v2.PictureFrame {
	frames := id3Tag.GetFrames(id3Tag.CommonID("Attached picture"))

	pictures := make([]id3v2.PictureFrame, 0, len(frames))
	for _, frame := range frames {
		if pic, ok := frame.(id3v2.PictureFrame); ok && len(pic.Picture) > 0 {
			pictures = append(pictures, pic)
		}
	}
	return pictures
}

func readGeneric(path string) (TrackInfo, error) {
	m, err := readMetadata(path)
	if err != nil {
		return TrackInfo{}, err
	}

	pic := m.Picture()
	return TrackInfo{
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		HasPicture:  pic != nil && len(pic.Data) > 0,
	}, nil
}

func readGenericPicture(path string) ([]byte, error) {
	m, err := readMetadata(path)
	if err != nil {
		return nil, err
	}

	if pic := m.Picture(); pic != nil {
		return pic.Data, nil
	}
	return nil, nil
}

func readMetadata(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read tags of %s: %w", filepath.Base(path), err)
	}
	return m, nil
}
