package domain

// DefaultShowID is the show watched when no override is configured.
const DefaultShowID = "2LtuhlpZRS83QYg7chUEao"

// Release is a detected episode recorded as a crash-triggering event.
// Identity is the exact (date, title) pair; entries are immutable once stored
// and the last entry in the ledger is the latest for display purposes.
type Release struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Episode is the normalized result of a catalog fetch. ID is the stable
// external identifier used for change detection; Title and ReleaseDate are
// display payload only. Never persisted as-is.
type Episode struct {
	ID          string
	Title       string
	ReleaseDate string
}

// WatchState is the single watermark record, overwritten on each successful
// check cycle.
type WatchState struct {
	LastCheckedEpoch       int64  `json:"last_checked_epoch"`
	LastCheckedAt          string `json:"last_checked_at"`
	LastEpisodeID          string `json:"last_episode_id"`
	LastEpisodeTitle       string `json:"last_episode_title"`
	LastEpisodeReleaseDate string `json:"last_episode_release_date"`
	ShowID                 string `json:"show_id"`
	Source                 string `json:"source"`
}

type SyncReason string

const (
	ReasonWatchersDisabled SyncReason = "watchers_disabled"
	ReasonIntervalGuard    SyncReason = "interval_guard"
	ReasonFetchFailed      SyncReason = "fetch_failed"
	ReasonOK               SyncReason = "ok"
)

// Episode source identifiers recorded in WatchState.Source.
const (
	SourceOfficialAPI = "official_api"
	SourcePublicPage  = "public_page"
)

// SyncResult reports the outcome of one watcher cycle. Triggered is true iff
// the cycle actually appended a new ledger entry.
type SyncResult struct {
	Enabled   bool       `json:"enabled"`
	Checked   bool       `json:"checked"`
	Triggered bool       `json:"triggered"`
	Reason    SyncReason `json:"reason"`
	Source    string     `json:"source,omitempty"`
}
