package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/coverquiz/internal/config"
	"github.com/handiism/coverquiz/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case level name used as an output prefix.
func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents a prefetch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Fetcher downloads the cover art of one album.
type Fetcher interface {
	FetchCover(ctx context.Context, album model.Album) ([]byte, error)
}

// Prefetcher downloads the covers of a whole album list concurrently.
type Prefetcher struct {
	fetcher     Fetcher
	concurrency int
	maxRetries  int
	retryDelay  func(tries int) time.Duration

	onProgress func(ProgressEvent)
}

// NewPrefetcher creates a new Prefetcher.
//
// onProgress may be nil. It is called from several goroutines at once.
func NewPrefetcher(settings *config.Settings, fetcher Fetcher, onProgress func(ProgressEvent)) *Prefetcher {
	concurrency := settings.MaxConcurrentCoverDownloads
	if concurrency < 1 {
		concurrency = 1
	}

	retries := settings.CoverMaxRetries
	if retries < 0 {
		retries = 0
	}

	return &Prefetcher{
		fetcher:     fetcher,
		concurrency: concurrency,
		maxRetries:  retries,
		retryDelay:  settings.RetryDelay,
		onProgress:  onProgress,
	}
}

// Prefetch downloads the cover of every album and returns them keyed by
// album ID.
//
// Albums without a cover URL are skipped. A failed download is reported as
// a progress event and left out of the result; it never fails the others.
// The only error returned is the context's.
func (p *Prefetcher) Prefetch(ctx context.Context, albums []model.Album) (map[string][]byte, error) {
	covers := make(map[string][]byte, len(albums))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	seen := make(map[string]struct{}, len(albums))
	for _, album := range albums {
		if !album.HasCover() {
			continue
		}
		if _, ok := seen[album.ID]; ok {
			continue
		}
		seen[album.ID] = struct{}{}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := p.fetchWithRetry(ctx, album)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				p.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading cover of %s: %v", album.Name, err), Level: LevelWarning})
				return nil
			}

			mu.Lock()
			covers[album.ID] = data
			mu.Unlock()

			p.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded cover of %s", album.Name), Level: LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return covers, err
	}

	p.progress(ProgressEvent{Message: fmt.Sprintf("Prefetched %d/%d covers", len(covers), len(seen)), Level: LevelInfo})
	return covers, nil
}

func (p *Prefetcher) fetchWithRetry(ctx context.Context, album model.Album) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	for tries := 0; ; tries++ {
		data, err = p.fetcher.FetchCover(ctx, album)
		if err == nil {
			return data, nil
		}
		// Only transport failures are worth another attempt.
		if tries >= p.maxRetries || !errors.Is(err, model.ErrNetwork) {
			return nil, err
		}

		p.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for cover of %s", tries+1, p.maxRetries, album.Name), Level: LevelWarning})
		if !p.waitForRetry(ctx, tries) {
			return nil, ctx.Err()
		}
	}
}

func (p *Prefetcher) waitForRetry(ctx context.Context, tries int) bool {
	timer := time.NewTimer(p.retryDelay(tries))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (p *Prefetcher) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
