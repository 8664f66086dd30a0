package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/handiism/coverquiz/internal/config"
	"github.com/handiism/coverquiz/internal/download"
	ioutils "github.com/handiism/coverquiz/internal/io"
	"github.com/handiism/coverquiz/internal/model"
	"github.com/handiism/coverquiz/internal/tui"
)

// previewOptions are the flags of the preview command.
type previewOptions struct {
	artist     string
	difficulty string
	outDir     string
	verbose    bool
}

func previewCmd() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write the pixelated covers of an artist as PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.artist == "" {
				if !isTerminal(os.Stdin) {
					return errors.New("--artist is required when not running in a terminal")
				}
				if err := promptPreview(&opts); err != nil {
					return fmt.Errorf("run preview prompt: %w", err)
				}
			}

			difficulty, err := model.ParseDifficulty(opts.difficulty)
			if err != nil {
				return err
			}

			source, err := newSource(settings, localDir)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runPreview(ctx, cmd.OutOrStdout(), settings, source, opts.artist, difficulty, opts.outDir, opts.verbose)
		},
	}

	cmd.Flags().StringVar(&opts.artist, "artist", "", "artist whose covers to render (asked for if missing)")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "easy", "easy, normal or expert (expert renders grayscale)")
	cmd.Flags().StringVar(&opts.outDir, "out", "covers", "output directory")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "show verbose output")
	return cmd
}

// promptPreview asks for the artist and difficulty.
func promptPreview(opts *previewOptions) error {
	options := make([]huh.Option[string], 0, len(model.Difficulties))
	for _, d := range model.Difficulties {
		options = append(options, huh.NewOption(d.String(), strings.ToLower(d.String())))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Artist").
				Placeholder("Artist name").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("please enter an artist name")
					}
					return nil
				}).
				Value(&opts.artist),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(options...).
				Value(&opts.difficulty),
		),
	).Run()
}

// runPreview loads the artist's albums, prefetches every cover and writes
// each one pixelated and presented as <out>/<album>.png.
func runPreview(ctx context.Context, w io.Writer, settings *config.Settings, source tui.Source, artist string, difficulty model.Difficulty, outDir string, verbose bool) error {
	report := func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !verbose {
			return
		}
		fmt.Fprintf(w, "[%s] %s\n", event.Level, event.Message)
	}

	albums, err := source.LoadAlbums(ctx, artist)
	if err != nil {
		return err
	}
	report(download.ProgressEvent{Message: fmt.Sprintf("Found %d album(s) of %s", len(albums), artist), Level: download.LevelInfo})
	if len(model.DistinctNames(albums)) < 4 {
		report(download.ProgressEvent{Message: "Not enough albums to play the game", Level: download.LevelWarning})
	}

	// The prefetcher reports from several goroutines at once.
	var mu sync.Mutex
	prefetcher := download.NewPrefetcher(settings, source, func(event download.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		report(event)
	})
	covers, err := prefetcher.Prefetch(ctx, albums)
	if err != nil {
		return err
	}

	if err := ioutils.EnsureDir(outDir); err != nil {
		return err
	}

	images := ioutils.NewImageService()
	used := make(map[string]int)
	written := 0
	for _, album := range albums {
		data, ok := covers[album.ID]
		if !ok {
			continue
		}

		img, err := images.Pixelate(data, settings.PixelBlockSize, difficulty.Grayscale())
		if err != nil {
			report(download.ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", album.Name, err), Level: download.LevelWarning})
			continue
		}
		encoded, err := images.EncodePNG(images.Present(img, settings.DisplaySize))
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, uniqueFileName(used, album.Name)+".png")
		if err := ioutils.WriteFile(path, encoded); err != nil {
			return err
		}
		written++
		report(download.ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: download.LevelVerbose})
	}

	report(download.ProgressEvent{Message: fmt.Sprintf("Wrote %d cover(s) to %s", written, outDir), Level: download.LevelSuccess})
	return nil
}

// uniqueFileName returns a sanitized file name for name, suffixed with a
// counter if an earlier album already used it.
func uniqueFileName(used map[string]int, name string) string {
	base := ioutils.SanitizeFileName(name)
	used[base]++
	if n := used[base]; n > 1 {
		return fmt.Sprintf("%s (%d)", base, n)
	}
	return base
}
