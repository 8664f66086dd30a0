package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/handiism/coverquiz/internal/catalog/dto"
	"github.com/handiism/coverquiz/internal/config"
	"github.com/handiism/coverquiz/internal/http"
	"github.com/handiism/coverquiz/internal/model"
)

// maxPageLimit is the largest page size the albums endpoint accepts.
const maxPageLimit = 50

// Token is a bearer token issued by the catalog's token endpoint.
type Token string

// Client talks to the music-catalog Web API.
//
// Client performs the three calls a game needs, in order:
//  1. Authenticate: client-credentials token exchange
//  2. FindArtist: top artist search hit for a name
//  3. ListAlbums: the artist's first albums
//
// and downloads cover art. It never retries and caches nothing; every call
// is bounded by the HTTP client's timeout.
//
// Example usage:
//
//	client := NewClient(settings, http.NewClient(settings.HTTPTimeout()))
//
//	albums, err := client.LoadAlbums(ctx, "Pitbull")
//	if errors.Is(err, model.ErrArtistNotFound) {
//	    fmt.Println("Artist not found")
//	}
type Client struct {
	httpClient   *http.Client
	tokenURL     string
	apiBaseURL   string
	clientID     string
	clientSecret string
	maxAlbums    int
}

// NewClient creates a new catalog Client from settings.
//
// The settings provide the endpoints, the credentials (see
// config.Settings.LoadCredentials) and the album limit.
func NewClient(settings *config.Settings, httpClient *http.Client) *Client {
	maxAlbums := settings.MaxAlbums
	if maxAlbums < 1 {
		maxAlbums = 10
	}

	return &Client{
		httpClient:   httpClient,
		tokenURL:     settings.TokenURL,
		apiBaseURL:   strings.TrimRight(settings.APIBaseURL, "/"),
		clientID:     settings.ClientID,
		clientSecret: settings.ClientSecret,
		maxAlbums:    maxAlbums,
	}
}

// Authenticate exchanges the configured credentials for a bearer token.
//
// Returns an error wrapping model.ErrAuth if the credentials are missing,
// the token endpoint rejects them or the response has no access token.
// Transport failures wrap model.ErrNetwork instead.
func (c *Client) Authenticate(ctx context.Context) (Token, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", fmt.Errorf("%w: %s and %s must be set", model.ErrAuth, config.EnvClientID, config.EnvClientSecret)
	}

	form := url.Values{"grant_type": {"client_credentials"}}

	var resp dto.TokenResponse
	if err := c.httpClient.PostForm(ctx, c.tokenURL, form, c.clientID, c.clientSecret, &resp); err != nil {
		if errors.Is(err, model.ErrNetwork) {
			return "", fmt.Errorf("token exchange: %w", err)
		}
		return "", fmt.Errorf("%w: %w", model.ErrAuth, err)
	}

	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: token response has no access_token", model.ErrAuth)
	}

	return Token(resp.AccessToken), nil
}

// FindArtist returns the top search match for name.
//
// Returns an error wrapping model.ErrArtistNotFound if the search has no
// results.
func (c *Client) FindArtist(ctx context.Context, token Token, name string) (model.Artist, error) {
	query := url.Values{
		"q":     {name},
		"type":  {"artist"},
		"limit": {"1"},
	}

	var resp dto.SearchResponse
	if err := c.httpClient.GetJSON(ctx, c.apiBaseURL+"/search?"+query.Encode(), string(token), &resp); err != nil {
		return model.Artist{}, fmt.Errorf("search artist %q: %w", name, err)
	}

	if len(resp.Artists.Items) == 0 {
		return model.Artist{}, fmt.Errorf("%w: %q", model.ErrArtistNotFound, name)
	}

	return resp.Artists.Items[0].ToArtist(), nil
}

// ListAlbums returns the artist's albums as listed by the API.
//
// The list is truncated to the configured maximum (10 by default) before
// albums without cover art are dropped. Editions and reissues are kept.
func (c *Client) ListAlbums(ctx context.Context, token Token, artistID string) ([]model.Album, error) {
	endpoint := fmt.Sprintf("%s/artists/%s/albums?limit=%s",
		c.apiBaseURL, url.PathEscape(artistID), strconv.Itoa(min(c.maxAlbums, maxPageLimit)))

	var resp dto.AlbumsResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, string(token), &resp); err != nil {
		return nil, fmt.Errorf("list albums of %s: %w", artistID, err)
	}

	items := resp.Items
	if len(items) > c.maxAlbums {
		items = items[:c.maxAlbums]
	}

	albums := make([]model.Album, 0, len(items))
	for _, item := range items {
		album := item.ToAlbum()
		if !album.HasCover() {
			continue
		}
		albums = append(albums, album)
	}

	return albums, nil
}

// LoadAlbums authenticates, finds the artist and lists its albums.
func (c *Client) LoadAlbums(ctx context.Context, artistName string) ([]model.Album, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	artist, err := c.FindArtist(ctx, token, artistName)
	if err != nil {
		return nil, err
	}

	return c.ListAlbums(ctx, token, artist.ID)
}

// FetchCover downloads the album's cover art.
func (c *Client) FetchCover(ctx context.Context, album model.Album) ([]byte, error) {
	if !album.HasCover() {
		return nil, fmt.Errorf("%w: album %q has no cover art", model.ErrDecode, album.Name)
	}

	data, err := c.httpClient.Get(ctx, album.CoverURL)
	if err != nil {
		return nil, fmt.Errorf("download cover of %q: %w", album.Name, err)
	}
	return data, nil
}
