package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

func spotifyStub(t *testing.T, episodesJSON string) *SpotifyClient {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			if user, pass, ok := r.BasicAuth(); !ok || user != "id" || pass != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok123"}`))
		case "/v1/shows/show1/episodes":
			if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if r.URL.Query().Get("limit") != "1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(episodesJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)

	return NewSpotifyClient("id", "secret").WithEndpoints(ts.URL+"/api/token", ts.URL+"/v1")
}

func TestSpotifyClient_LatestEpisode(t *testing.T) {
	c := spotifyStub(t, `{"items":[{"id":" ep1 ","name":"Episode 1","release_date":"2026-02-01"}]}`)

	ep, err := c.LatestEpisode(context.Background(), "show1")
	if err != nil {
		t.Fatalf("LatestEpisode: %v", err)
	}
	want := domain.Episode{ID: "ep1", Title: "Episode 1", ReleaseDate: "2026-02-01"}
	if ep != want {
		t.Fatalf("episode: want %+v, got %+v", want, ep)
	}
}

func TestSpotifyClient_NoItems(t *testing.T) {
	c := spotifyStub(t, `{"items":[]}`)
	if _, err := c.LatestEpisode(context.Background(), "show1"); err == nil {
		t.Fatal("expected error for empty items")
	}
}

func TestSpotifyClient_PartialPayload(t *testing.T) {
	c := spotifyStub(t, `{"items":[{"id":"ep1","name":"  ","release_date":"2026-02-01"}]}`)
	if _, err := c.LatestEpisode(context.Background(), "show1"); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestSpotifyClient_NonJSONResponse(t *testing.T) {
	c := spotifyStub(t, `<html>definitely not json</html>`)
	if _, err := c.LatestEpisode(context.Background(), "show1"); err == nil {
		t.Fatal("expected error for non-json payload")
	}
}

func TestSpotifyClient_NotConfigured(t *testing.T) {
	c := NewSpotifyClient("", "")
	if _, err := c.LatestEpisode(context.Background(), "show1"); err != ErrSpotifyNotConfigured {
		t.Fatalf("want ErrSpotifyNotConfigured, got %v", err)
	}
}

func TestSpotifyClient_TokenExchangeFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewSpotifyClient("id", "secret").WithEndpoints(ts.URL+"/api/token", ts.URL+"/v1")
	if _, err := c.LatestEpisode(context.Background(), "show1"); err == nil {
		t.Fatal("expected error when token exchange fails")
	}
}
