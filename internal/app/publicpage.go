package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
	"github.com/Joe-Bitz/goodmorninguganda/internal/jsonx"
)

const (
	publicShowBase  = "https://open.spotify.com/show/"
	publicUserAgent = "Mozilla/5.0 (compatible; GMUWatcher/1.0; +https://goodmorninguganda.local)"
)

// Episode tokens are fixed-length base62 ids embedded in /episode/ URLs.
var reEpisodeToken = regexp.MustCompile(`/episode/([A-Za-z0-9]{22})`)

// PublicPageClient scrapes the show's public web page, used when the official
// API is unavailable. The first /episode/ token found in the page body is the
// newest episode; title and release date are recovered from the embedded
// __NEXT_DATA__ JSON island when possible, with placeholders otherwise. The
// token alone is enough for change detection, so a missing or unparseable
// island is not a failure.
type PublicPageClient struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewPublicPageClient() *PublicPageClient {
	return &PublicPageClient{
		baseURL: publicShowBase,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
		now: time.Now,
	}
}

// WithBaseURL overrides the show page base URL (tests).
func (c *PublicPageClient) WithBaseURL(base string) *PublicPageClient {
	if strings.TrimSpace(base) != "" {
		c.baseURL = strings.TrimSpace(base)
	}
	return c
}

func (c *PublicPageClient) Name() string {
	return domain.SourcePublicPage
}

func (c *PublicPageClient) LatestEpisode(ctx context.Context, showID string) (domain.Episode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+showID, nil)
	if err != nil {
		return domain.Episode{}, err
	}
	req.Header.Set("User-Agent", publicUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Episode{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return domain.Episode{}, fmt.Errorf("show page http error: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Episode{}, err
	}

	m := reEpisodeToken.FindSubmatch(body)
	if m == nil {
		return domain.Episode{}, errors.New("no episode token found in show page")
	}
	token := string(m[1])

	ep := domain.Episode{
		ID:          token,
		Title:       "Spotify episode " + token,
		ReleaseDate: c.now().UTC().Format("2006-01-02"),
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ep, nil
	}
	raw := strings.TrimSpace(doc.Find(`script#__NEXT_DATA__`).First().Text())
	if raw == "" {
		return ep, nil
	}
	root, err := jsonx.Parse([]byte(raw))
	if err != nil {
		return ep, nil
	}

	wantURI := "spotify:episode:" + token
	obj, ok := jsonx.Walk(root, func(o jsonx.Value) bool {
		if uri, ok := o.Field("uri"); ok && uri.Text() == wantURI {
			return true
		}
		if id, ok := o.Field("id"); ok && id.Kind == jsonx.String && id.Str == token {
			return true
		}
		return false
	})
	if !ok {
		return ep, nil
	}

	if title := firstText(obj, "name", "title"); title != "" {
		ep.Title = title
	}
	if date := firstText(obj, "release_date", "releaseDate", "date"); date != "" {
		ep.ReleaseDate = date
	}
	return ep, nil
}

// firstText returns the first non-blank scalar field among keys.
func firstText(obj jsonx.Value, keys ...string) string {
	for _, key := range keys {
		if f, ok := obj.Field(key); ok {
			if s := strings.TrimSpace(f.Text()); s != "" {
				return s
			}
		}
	}
	return ""
}
