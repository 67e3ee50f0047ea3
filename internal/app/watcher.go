package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
	"github.com/Joe-Bitz/goodmorninguganda/internal/ports"
)

// Watcher is the sync orchestrator. It is invoked synchronously on every page
// render; there is no background scheduler, so the interval guard is the only
// throttle between the page and the upstream catalog.
type Watcher struct {
	logger   zerolog.Logger
	official ports.EpisodeSource // nil when credentials are absent
	public   ports.EpisodeSource // nil when public watch is disabled
	releases ports.ReleaseStore
	state    ports.StateStore
	showID   string

	// Interval is the minimum time between upstream checks.
	Interval time.Duration
	// Now supplies the clock; injected in tests.
	Now func() time.Time

	mu sync.Mutex
}

const checkInterval = 15 * time.Minute

func NewWatcher(logger zerolog.Logger, official, public ports.EpisodeSource, releases ports.ReleaseStore, state ports.StateStore, showID string) *Watcher {
	showID = strings.TrimSpace(showID)
	if showID == "" {
		showID = domain.DefaultShowID
	}
	return &Watcher{
		logger:   logger,
		official: official,
		public:   public,
		releases: releases,
		state:    state,
		showID:   showID,
		Interval: checkInterval,
		Now:      time.Now,
	}
}

// MaybeSync runs one watch cycle and never fails: every error degrades to "no
// change detected this cycle". Cycles are serialized in-process so two
// concurrent renders cannot both observe a stale watermark; the stores' file
// locks cover concurrent processes.
func (w *Watcher) MaybeSync(ctx context.Context) domain.SyncResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.official == nil && w.public == nil {
		return domain.SyncResult{Reason: domain.ReasonWatchersDisabled}
	}

	now := w.Now().UTC()
	state := w.state.Load(ctx)
	if now.Unix()-state.LastCheckedEpoch < int64(w.Interval/time.Second) {
		return domain.SyncResult{Enabled: true, Reason: domain.ReasonIntervalGuard}
	}

	latest, source, ok := w.fetch(ctx)
	if !ok {
		// The watermark is deliberately left untouched here: the next call
		// retries immediately instead of waiting out the interval, but at
		// most one attempt per source happens within a single cycle.
		return domain.SyncResult{Enabled: true, Checked: true, Reason: domain.ReasonFetchFailed, Source: source}
	}

	triggered := false
	lastID := strings.TrimSpace(state.LastEpisodeID)
	if lastID != "" && latest.ID != lastID {
		added, err := w.releases.AppendIfMissing(ctx, latest.ReleaseDate, latest.Title)
		if err != nil {
			w.logger.Error().Err(err).Str("episode_id", latest.ID).Msg("release append failed")
		} else {
			triggered = added
			if added {
				w.logger.Info().
					Str("episode_id", latest.ID).
					Str("title", latest.Title).
					Str("source", source).
					Msg("new release detected")
			}
		}
	}
	// lastID == "" is the bootstrap case: establish the watermark without
	// triggering, so the very first run never fires a false alarm.

	newState := domain.WatchState{
		LastCheckedEpoch:       now.Unix(),
		LastCheckedAt:          now.Format(time.RFC3339),
		LastEpisodeID:          latest.ID,
		LastEpisodeTitle:       latest.Title,
		LastEpisodeReleaseDate: latest.ReleaseDate,
		ShowID:                 w.showID,
		Source:                 source,
	}
	if err := w.state.Save(ctx, newState); err != nil {
		w.logger.Error().Err(err).Msg("watch state save failed")
	}

	return domain.SyncResult{Enabled: true, Checked: true, Triggered: triggered, Reason: domain.ReasonOK, Source: source}
}

// fetch tries the official source first, then the public page. The returned
// source is whichever was attempted last.
func (w *Watcher) fetch(ctx context.Context) (domain.Episode, string, bool) {
	var source string
	for _, src := range []ports.EpisodeSource{w.official, w.public} {
		if src == nil {
			continue
		}
		source = src.Name()
		ep, err := src.LatestEpisode(ctx, w.showID)
		if err != nil {
			w.logger.Warn().Err(err).Str("source", source).Msg("episode fetch failed")
			continue
		}
		return ep, source, true
	}
	return domain.Episode{}, source, false
}
