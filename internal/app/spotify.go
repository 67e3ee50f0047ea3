package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyAPIBase  = "https://api.spotify.com/v1"

	// One attempt per cycle, bounded; a slow upstream only slows that render.
	fetchTimeout = 12 * time.Second
)

var ErrSpotifyNotConfigured = errors.New("spotify credentials not configured")

// SpotifyClient fetches the newest episode of a show from the official
// catalog API using a client-credentials token exchange.
type SpotifyClient struct {
	clientID     string
	clientSecret string
	tokenURL     string
	apiBase      string
	client       *http.Client
}

func NewSpotifyClient(clientID, clientSecret string) *SpotifyClient {
	return &SpotifyClient{
		clientID:     strings.TrimSpace(clientID),
		clientSecret: strings.TrimSpace(clientSecret),
		tokenURL:     spotifyTokenURL,
		apiBase:      spotifyAPIBase,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// WithEndpoints overrides the token and API endpoints (tests).
func (c *SpotifyClient) WithEndpoints(tokenURL, apiBase string) *SpotifyClient {
	if strings.TrimSpace(tokenURL) != "" {
		c.tokenURL = strings.TrimSpace(tokenURL)
	}
	if strings.TrimSpace(apiBase) != "" {
		c.apiBase = strings.TrimSpace(apiBase)
	}
	return c
}

func (c *SpotifyClient) Configured() bool {
	return c != nil && c.clientID != "" && c.clientSecret != ""
}

func (c *SpotifyClient) Name() string {
	return domain.SourceOfficialAPI
}

// LatestEpisode requests exactly one item, newest first. Every failure mode
// (missing credentials, transport, HTTP error, malformed or partial payload,
// zero items) surfaces as an error for the watcher to absorb.
func (c *SpotifyClient) LatestEpisode(ctx context.Context, showID string) (domain.Episode, error) {
	if !c.Configured() {
		return domain.Episode{}, ErrSpotifyNotConfigured
	}
	token, err := c.token(ctx)
	if err != nil {
		return domain.Episode{}, err
	}

	endpoint := c.apiBase + "/shows/" + url.PathEscape(showID) + "/episodes?limit=1&market=US"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Episode{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Episode{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return domain.Episode{}, fmt.Errorf("spotify episodes http error: %s", resp.Status)
	}

	var payload struct {
		Items []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			ReleaseDate string `json:"release_date"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Episode{}, err
	}
	if len(payload.Items) == 0 {
		return domain.Episode{}, errors.New("spotify returned no episodes")
	}

	item := payload.Items[0]
	ep := domain.Episode{
		ID:          strings.TrimSpace(item.ID),
		Title:       strings.TrimSpace(item.Name),
		ReleaseDate: strings.TrimSpace(item.ReleaseDate),
	}
	if ep.ID == "" || ep.Title == "" || ep.ReleaseDate == "" {
		return domain.Episode{}, errors.New("spotify episode payload incomplete")
	}
	return ep, nil
}

func (c *SpotifyClient) token(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("spotify token http error: %s", resp.Status)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return "", errors.New("spotify token response missing access_token")
	}
	return payload.AccessToken, nil
}
