package library

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/handiism/coverquiz/internal/model"
)

type mp3Fixture struct {
	name        string
	artist      string
	albumArtist string
	album       string
	pictures    []id3v2.PictureFrame
}

func writeMP3(t *testing.T, dir string, fx mp3Fixture) string {
	t.Helper()

	id3Tag := id3v2.NewEmptyTag()
	id3Tag.SetArtist(fx.artist)
	id3Tag.SetAlbum(fx.album)
	if fx.albumArtist != "" {
		id3Tag.AddTextFrame(id3Tag.CommonID("Band/Orchestra/Accompaniment"), id3v2.EncodingUTF8, fx.albumArtist)
	}
	for _, pic := range fx.pictures {
		id3Tag.AddAttachedPicture(pic)
	}

	path := filepath.Join(dir, fx.name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if _, err := id3Tag.WriteTo(f); err != nil {
		t.Fatalf("write tag: %v", err)
	}
	// Some bytes standing in for the audio stream.
	if _, err := f.Write(bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 16)); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return path
}

func picture(kind byte, data string) id3v2.PictureFrame {
	return id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/png",
		PictureType: kind,
		Description: "Cover",
		Picture:     []byte(data),
	}
}

func newFixtureLibrary(t *testing.T, maxAlbums int) *Library {
	t.Helper()

	dir := t.TempDir()
	sub := filepath.Join(dir, "Artist A", "Second")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	fixtures := []struct {
		dir string
		fx  mp3Fixture
	}{
		{dir, mp3Fixture{name: "01.mp3", artist: "Artist A", album: "First", pictures: []id3v2.PictureFrame{
			picture(id3v2.PTOther, "other-art"),
			picture(id3v2.PTFrontCover, "first-front"),
		}}},
		{dir, mp3Fixture{name: "02.mp3", artist: "Artist A", album: "First"}},
		{sub, mp3Fixture{name: "01.mp3", artist: "artist a", album: "Second"}},
		{sub, mp3Fixture{name: "02.mp3", artist: "Artist A", album: "Second", pictures: []id3v2.PictureFrame{
			picture(id3v2.PTFrontCover, "second-front"),
		}}},
		{dir, mp3Fixture{name: "03.mp3", artist: "Artist A", album: "No Art"}},
		{dir, mp3Fixture{name: "04.mp3", artist: "Guest feat. B", albumArtist: "Artist A", album: "Collab", pictures: []id3v2.PictureFrame{
			picture(id3v2.PTOther, "collab-art"),
		}}},
		{dir, mp3Fixture{name: "05.mp3", artist: "Artist B", album: "Elsewhere", pictures: []id3v2.PictureFrame{
			picture(id3v2.PTFrontCover, "b-art"),
		}}},
	}
	for _, f := range fixtures {
		writeMP3(t, f.dir, f.fx)
	}

	// Unsupported and unreadable files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.flac"), []byte("not a flac"), 0644); err != nil {
		t.Fatal(err)
	}

	lib, err := Open(dir, maxAlbums)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return lib
}

func TestLibrary_LoadAlbums(t *testing.T) {
	lib := newFixtureLibrary(t, 10)

	albums, err := lib.LoadAlbums(context.Background(), "ARTIST A")
	if err != nil {
		t.Fatalf("LoadAlbums() error = %v", err)
	}

	var names []string
	for _, album := range albums {
		names = append(names, album.Name)
		if !strings.HasPrefix(album.ID, "local:") {
			t.Errorf("album %q ID = %q, want local: prefix", album.Name, album.ID)
		}
		if !strings.HasPrefix(album.CoverURL, "file://") {
			t.Errorf("album %q CoverURL = %q, want file URL", album.Name, album.CoverURL)
		}
	}

	want := "Collab,First,Second"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("LoadAlbums() names = %q, want %q", got, want)
	}
}

func TestLibrary_LoadAlbums_Truncates(t *testing.T) {
	lib := newFixtureLibrary(t, 2)

	albums, err := lib.LoadAlbums(context.Background(), "Artist A")
	if err != nil {
		t.Fatalf("LoadAlbums() error = %v", err)
	}
	if len(albums) != 2 {
		t.Errorf("LoadAlbums() returned %d albums, want 2", len(albums))
	}
}

func TestLibrary_LoadAlbums_NotFound(t *testing.T) {
	lib := newFixtureLibrary(t, 10)

	_, err := lib.LoadAlbums(context.Background(), "Nobody")
	if !errors.Is(err, model.ErrArtistNotFound) {
		t.Errorf("LoadAlbums() error = %v, want ErrArtistNotFound", err)
	}
}

func TestLibrary_LoadAlbums_Cancelled(t *testing.T) {
	lib := newFixtureLibrary(t, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := lib.LoadAlbums(ctx, "Artist A"); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadAlbums() error = %v, want context.Canceled", err)
	}
}

func TestLibrary_FetchCover(t *testing.T) {
	lib := newFixtureLibrary(t, 10)

	albums, err := lib.LoadAlbums(context.Background(), "Artist A")
	if err != nil {
		t.Fatalf("LoadAlbums() error = %v", err)
	}

	want := map[string]string{
		"First":  "first-front", // front cover wins over the earlier "other" picture
		"Second": "second-front",
		"Collab": "collab-art",
	}
	for _, album := range albums {
		data, err := lib.FetchCover(context.Background(), album)
		if err != nil {
			t.Errorf("FetchCover(%q) error = %v", album.Name, err)
			continue
		}
		if string(data) != want[album.Name] {
			t.Errorf("FetchCover(%q) = %q, want %q", album.Name, data, want[album.Name])
		}
	}
}

func TestLibrary_FetchCover_Errors(t *testing.T) {
	dir := t.TempDir()
	bare := writeMP3(t, dir, mp3Fixture{name: "bare.mp3", artist: "A", album: "Bare"})

	lib, err := Open(dir, 10)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	tests := []struct {
		name  string
		album model.Album
	}{
		{"no picture", model.Album{Name: "Bare", CoverURL: fileURL(bare)}},
		{"not a file url", model.Album{Name: "Remote", CoverURL: "https://example.com/cover.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lib.FetchCover(context.Background(), tt.album)
			if !errors.Is(err, model.ErrDecode) {
				t.Errorf("FetchCover() error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.mp3")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(filepath.Join(dir, "missing"), 10); err == nil {
		t.Error("Open(missing) expected error")
	}
	if _, err := Open(file, 10); err == nil {
		t.Error("Open(file) expected error")
	}
}

func TestSupported(t *testing.T) {
	tests := map[string]bool{
		"a.mp3":  true,
		"a.MP3":  true,
		"a.flac": true,
		"a.m4a":  true,
		"a.ogg":  true,
		"a.wav":  false,
		"a.txt":  false,
		"mp3":    false,
	}
	for path, want := range tests {
		if got := Supported(path); got != want {
			t.Errorf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}
