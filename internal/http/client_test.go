package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/handiism/coverquiz/internal/model"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "coverquiz" {
			t.Errorf("User-Agent = %q, want coverquiz", r.Header.Get("User-Agent"))
		}
		w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	body, err := NewClient(time.Second).Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(body) != "image-bytes" {
		t.Errorf("body = %q, want %q", body, "image-bytes")
	}
}

func TestClient_GetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(time.Second).Get(context.Background(), srv.URL)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewClient(time.Second).Get(context.Background(), addr)
	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := NewClient(50*time.Millisecond).Get(context.Background(), srv.URL)
	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("expected ErrNetwork on timeout, got %v", err)
	}
}

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"value"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	if err := NewClient(time.Second).GetJSON(context.Background(), srv.URL, "tok", &out); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if out.Name != "value" {
		t.Errorf("Name = %q, want %q", out.Name, "value")
	}
}

func TestClient_GetJSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{invalid json`))
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient(time.Second).GetJSON(context.Background(), srv.URL, "", &out)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestClient_PostForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			t.Errorf("BasicAuth = (%q, %q, %v), want (id, secret, true)", user, pass, ok)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q, want client_credentials", got)
		}
		w.Write([]byte(`{"access_token":"abc"}`))
	}))
	defer srv.Close()

	var out struct {
		AccessToken string `json:"access_token"`
	}
	form := url.Values{"grant_type": {"client_credentials"}}
	if err := NewClient(time.Second).PostForm(context.Background(), srv.URL, form, "id", "secret", &out); err != nil {
		t.Fatalf("PostForm failed: %v", err)
	}
	if out.AccessToken != "abc" {
		t.Errorf("AccessToken = %q, want abc", out.AccessToken)
	}
}
