package commands

import (
	"github.com/handiism/coverquiz/internal/catalog"
	"github.com/handiism/coverquiz/internal/config"
	qhttp "github.com/handiism/coverquiz/internal/http"
	"github.com/handiism/coverquiz/internal/library"
	"github.com/handiism/coverquiz/internal/tui"
)

// newSource returns the local library if dir (or settings.LibraryPath) is
// set, the online catalog otherwise.
func newSource(settings *config.Settings, dir string) (tui.Source, error) {
	if dir == "" {
		dir = settings.LibraryPath
	}
	if dir != "" {
		lib, err := library.Open(dir, settings.MaxAlbums)
		if err != nil {
			return nil, err
		}
		return lib, nil
	}

	return catalog.NewClient(settings, qhttp.NewClient(settings.HTTPTimeout())), nil
}
