package ports

import (
	"context"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

// EpisodeSource fetches the newest episode of a show from one upstream.
// Implementations return an error for every failure mode (missing
// configuration, transport, malformed payload); the watcher decides what a
// failure means for the cycle.
type EpisodeSource interface {
	// Name identifies the source in WatchState and SyncResult
	// (domain.SourceOfficialAPI or domain.SourcePublicPage).
	Name() string
	LatestEpisode(ctx context.Context, showID string) (domain.Episode, error)
}
