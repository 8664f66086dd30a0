// Package http provides the HTTP client used for music-catalog API calls
// and cover art downloads.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Request timeouts
//   - JSON requests with bearer or basic authentication
//   - Classification of failures: transport errors wrap model.ErrNetwork,
//     non-2xx responses are *StatusError
//
// # Basic Usage
//
//	client := http.NewClient(15 * time.Second)
//
//	// Download bytes
//	cover, err := client.Get(ctx, coverURL)
//
//	// Token exchange
//	var tok tokenResponse
//	err = client.PostForm(ctx, tokenURL, url.Values{"grant_type": {"client_credentials"}}, id, secret, &tok)
package http
