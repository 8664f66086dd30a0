package library

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/coverquiz/internal/model"
)

// idPrefix marks album IDs produced by a Library.
const idPrefix = "local:"

// Library serves albums from a directory of audio files.
//
// Library is the offline counterpart of the catalog client: it answers the
// same LoadAlbums / FetchCover calls, but reads album titles and embedded
// cover art from the files' tags instead of calling an API.
//
// Example:
//
//	lib, err := library.Open("/home/user/Music", 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	albums, err := lib.LoadAlbums(ctx, "Daft Punk")
type Library struct {
	root      string
	maxAlbums int
}

// Open creates a Library rooted at dir.
//
// Returns an error if dir does not exist or is not a directory.
func Open(dir string, maxAlbums int) (*Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open library: %s is not a directory", abs)
	}

	if maxAlbums < 1 {
		maxAlbums = 10
	}

	return &Library{root: abs, maxAlbums: maxAlbums}, nil
}

// Root returns the absolute library directory.
func (l *Library) Root() string {
	return l.root
}

// albumGroup collects the files of one album title.
type albumGroup struct {
	title     string
	coverPath string
}

// LoadAlbums returns the albums of artistName found in the library.
//
// A file belongs to the artist when its artist or album-artist tag matches
// (case-insensitive). Files are grouped by album title; the cover comes
// from the first file of the album that embeds a picture and albums
// without any picture are skipped. Albums are sorted by title and
// truncated to the library's maximum.
//
// Returns an error wrapping model.ErrArtistNotFound if no file matches.
func (l *Library) LoadAlbums(ctx context.Context, artistName string) ([]model.Album, error) {
	groups := make(map[string]*albumGroup)
	matched := false

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectories are skipped, not fatal.
			if d != nil && d.IsDir() && path != l.root {
				return fs.SkipDir
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !Supported(path) {
			return nil
		}

		info, err := ReadTrack(path)
		if err != nil {
			return nil
		}
		if !model.SameArtist(info.Artist, artistName) && !model.SameArtist(info.AlbumArtist, artistName) {
			return nil
		}
		matched = true

		title := strings.TrimSpace(info.Album)
		if title == "" {
			return nil
		}

		group, ok := groups[title]
		if !ok {
			group = &albumGroup{title: title}
			groups[title] = group
		}
		if group.coverPath == "" && info.HasPicture {
			group.coverPath = path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan library %s: %w", l.root, err)
	}

	if !matched {
		return nil, fmt.Errorf("%w: %q in %s", model.ErrArtistNotFound, artistName, l.root)
	}

	titles := make([]string, 0, len(groups))
	for title := range groups {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	albums := make([]model.Album, 0, len(titles))
	for _, title := range titles {
		group := groups[title]
		if group.coverPath == "" {
			continue
		}
		albums = append(albums, model.Album{
			ID:       idPrefix + group.title,
			Name:     group.title,
			CoverURL: fileURL(group.coverPath),
		})
		if len(albums) == l.maxAlbums {
			break
		}
	}

	return albums, nil
}

// FetchCover returns the picture embedded in the album's cover file.
func (l *Library) FetchCover(ctx context.Context, album model.Album) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := filePath(album.CoverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: album %q: %v", model.ErrDecode, album.Name, err)
	}

	picture, err := ReadPicture(path)
	if err != nil {
		return nil, fmt.Errorf("read cover of %q: %w", album.Name, err)
	}
	return picture, nil
}

func fileURL(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func filePath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("not a file URL: %q", rawURL)
	}
	return filepath.FromSlash(u.Path), nil
}
