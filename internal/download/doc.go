// Package download prefetches album covers ahead of play.
//
// # Prefetcher
//
// The Prefetcher fans out one cover download per album, bounded by
// settings.MaxConcurrentCoverDownloads, and collects the results keyed by
// album ID:
//
//	prefetcher := download.NewPrefetcher(settings, source, func(event download.ProgressEvent) {
//	    log.Println(event.Message)
//	})
//
//	covers, err := prefetcher.Prefetch(ctx, albums)
//
// # Failures
//
// A cover that cannot be downloaded is reported through the progress
// callback and is absent from the result, so callers fall back to an
// on-demand fetch. Network errors can be retried with exponential backoff
// by raising settings.CoverMaxRetries (0 by default); the wait is set by
// settings.CoverRetryCooldown and settings.CoverRetryExponent.
package download
