package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/handiism/coverquiz/internal/config"
	qhttp "github.com/handiism/coverquiz/internal/http"
	"github.com/handiism/coverquiz/internal/model"
)

// fakeCatalog serves the three catalog endpoints plus cover downloads.
type fakeCatalog struct {
	artists    map[string]string // lower-case name -> id
	albumsJSON map[string]string // artist id -> items JSON
	tokenCode  int
}

func (f *fakeCatalog) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
			return
		}
		if f.tokenCode != 0 {
			http.Error(w, `{"error":"server"}`, f.tokenCode)
			return
		}
		fmt.Fprint(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3600}`)
	})

	mux.HandleFunc("GET /v1/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		q := r.URL.Query()
		if q.Get("type") != "artist" || q.Get("limit") != "1" {
			t.Errorf("unexpected search query: %s", r.URL.RawQuery)
		}
		id, ok := f.artists[strings.ToLower(q.Get("q"))]
		if !ok {
			fmt.Fprint(w, `{"artists":{"items":[]}}`)
			return
		}
		fmt.Fprintf(w, `{"artists":{"items":[{"id":%q,"name":%q}]}}`, id, q.Get("q"))
	})

	mux.HandleFunc("GET /v1/artists/{id}/albums", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		// The real endpoint rejects page sizes outside 1..50.
		if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err != nil || n < 1 || n > 50 {
			http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
			return
		}
		items, ok := f.albumsJSON[r.PathValue("id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"items":%s}`, items)
	})

	mux.HandleFunc("GET /covers/{name}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "cover:"+r.PathValue("name"))
	})

	return mux
}

func albumItems(baseURL string, n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"id":"al%d","name":"Album %d","images":[{"url":"%s/covers/al%d","width":640,"height":640},{"url":"small","width":64,"height":64}]}`,
			i, i, baseURL, i)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func newTestClient(t *testing.T, f *fakeCatalog) (*Client, *httptest.Server) {
	t.Helper()
	return newTestClientWithMax(t, f, config.DefaultSettings().MaxAlbums)
}

func newTestClientWithMax(t *testing.T, f *fakeCatalog, maxAlbums int) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	settings := config.DefaultSettings()
	settings.TokenURL = srv.URL + "/api/token"
	settings.APIBaseURL = srv.URL + "/v1/"
	settings.ClientID = "id"
	settings.ClientSecret = "secret"
	settings.MaxAlbums = maxAlbums

	return NewClient(settings, qhttp.NewClient(time.Second)), srv
}

func TestClient_LoadAlbums(t *testing.T) {
	f := &fakeCatalog{
		artists:    map[string]string{"pitbull": "art1"},
		albumsJSON: map[string]string{},
	}
	client, srv := newTestClient(t, f)
	f.albumsJSON["art1"] = albumItems(srv.URL, 12)

	albums, err := client.LoadAlbums(context.Background(), "Pitbull")
	if err != nil {
		t.Fatalf("LoadAlbums failed: %v", err)
	}

	if len(albums) != 10 {
		t.Fatalf("got %d albums, want 10 (truncated)", len(albums))
	}
	if albums[0].ID != "al0" || albums[0].Name != "Album 0" {
		t.Errorf("albums[0] = %+v", albums[0])
	}
	if albums[0].CoverURL != srv.URL+"/covers/al0" {
		t.Errorf("CoverURL = %q, want first (largest) image", albums[0].CoverURL)
	}
}

func TestClient_LoadAlbums_LargeMaxAlbums(t *testing.T) {
	f := &fakeCatalog{
		artists:    map[string]string{"pitbull": "art1"},
		albumsJSON: map[string]string{},
	}
	client, srv := newTestClientWithMax(t, f, 80)
	f.albumsJSON["art1"] = albumItems(srv.URL, 50)

	albums, err := client.LoadAlbums(context.Background(), "Pitbull")
	if err != nil {
		t.Fatalf("LoadAlbums failed: %v", err)
	}
	if len(albums) != 50 {
		t.Errorf("got %d albums, want 50", len(albums))
	}
}

func TestClient_FindArtistNotFound(t *testing.T) {
	client, _ := newTestClient(t, &fakeCatalog{})

	_, err := client.LoadAlbums(context.Background(), "Nobody")
	if !errors.Is(err, model.ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestClient_AuthenticateErrors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		secret string
		code   int
	}{
		{name: "missing credentials", id: "", secret: ""},
		{name: "rejected credentials", id: "id", secret: "wrong"},
		{name: "server error", id: "id", secret: "secret", code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, &fakeCatalog{tokenCode: tt.code})
			client.clientID = tt.id
			client.clientSecret = tt.secret

			_, err := client.Authenticate(context.Background())
			if !errors.Is(err, model.ErrAuth) {
				t.Fatalf("expected ErrAuth, got %v", err)
			}
		})
	}
}

func TestClient_AuthenticateEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"token_type":"Bearer"}`)
	}))
	defer srv.Close()

	settings := config.DefaultSettings()
	settings.TokenURL = srv.URL
	settings.ClientID = "id"
	settings.ClientSecret = "secret"

	_, err := NewClient(settings, qhttp.NewClient(time.Second)).Authenticate(context.Background())
	if !errors.Is(err, model.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	settings := config.DefaultSettings()
	settings.TokenURL = addr + "/api/token"
	settings.ClientID = "id"
	settings.ClientSecret = "secret"

	_, err := NewClient(settings, qhttp.NewClient(time.Second)).LoadAlbums(context.Background(), "x")
	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if errors.Is(err, model.ErrAuth) {
		t.Error("transport failure should not be reported as ErrAuth")
	}
}

func TestClient_ListAlbumsDropsAlbumsWithoutCovers(t *testing.T) {
	f := &fakeCatalog{
		albumsJSON: map[string]string{
			"a": `[{"id":"1","name":"One","images":[{"url":"u1"}]},{"id":"2","name":"Two","images":[]},{"id":"3","name":"Three","images":[{"url":"u3"}]}]`,
		},
	}
	client, _ := newTestClient(t, f)

	albums, err := client.ListAlbums(context.Background(), "tok", "a")
	if err != nil {
		t.Fatalf("ListAlbums failed: %v", err)
	}
	if len(albums) != 2 {
		t.Fatalf("got %d albums, want 2", len(albums))
	}
	for _, album := range albums {
		if album.Name == "Two" {
			t.Error("album without images should be dropped")
		}
	}
}

func TestClient_ListAlbumsStatusError(t *testing.T) {
	client, _ := newTestClient(t, &fakeCatalog{})

	_, err := client.ListAlbums(context.Background(), "tok", "unknown")

	var statusErr *qhttp.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
}

func TestClient_FetchCover(t *testing.T) {
	client, srv := newTestClient(t, &fakeCatalog{})

	data, err := client.FetchCover(context.Background(), model.Album{Name: "x", CoverURL: srv.URL + "/covers/x"})
	if err != nil {
		t.Fatalf("FetchCover failed: %v", err)
	}
	if string(data) != "cover:x" {
		t.Errorf("data = %q, want %q", data, "cover:x")
	}

	if _, err := client.FetchCover(context.Background(), model.Album{Name: "none"}); err == nil {
		t.Error("expected error for album without cover")
	}
}
