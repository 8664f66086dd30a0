package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/handiism/coverquiz/internal/model"
)

// StatusError is returned when a server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.URL, e.StatusCode, e.Status)
}

// Client wraps HTTP operations used by the catalog client and the cover
// downloads.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling (every request is bounded)
//   - JSON decoding with bearer or basic authentication
//   - Transport failures wrapped as model.ErrNetwork
//
// Example usage:
//
//	client := NewClient(15 * time.Second)
//
//	// Download cover art
//	data, err := client.Get(ctx, coverURL)
//
//	// Call a JSON API
//	var out searchResponse
//	err = client.GetJSON(ctx, searchURL, token, &out)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "coverquiz",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails (wrapping model.ErrNetwork)
//   - The response status is not 2xx (*StatusError)
//   - Reading the body fails (wrapping model.ErrNetwork)
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", model.ErrNetwork, url, err)
	}
	return body, nil
}

// GetJSON performs a GET request with a bearer token and decodes the JSON
// response into v.
//
// Example:
//
//	var out albumsResponse
//	err := client.GetJSON(ctx, "https://api.spotify.com/v1/artists/x/albums", token, &out)
func (c *Client) GetJSON(ctx context.Context, url, bearer string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.doJSON(req, v)
}

// PostForm sends form-encoded values with HTTP basic authentication and
// decodes the JSON response into v.
//
// This is the shape of an OAuth client-credentials token request.
func (c *Client) PostForm(ctx context.Context, endpoint string, form url.Values, user, password string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(user, password)

	return c.doJSON(req, v)
}

func (c *Client) doJSON(req *http.Request, v any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Redacted(), err)
	}
	return nil
}

// do sends the request and checks the status code. The caller closes the
// body of a successful response.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &StatusError{
			URL:        req.URL.Redacted(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return resp, nil
}
