package domain

// Metrics are the fabricated stock-style figures shown on the page, already
// formatted for display.
type Metrics struct {
	NetWorth      string `json:"net_worth"`
	PNL           string `json:"pnl"`
	ShortInterest string `json:"short_interest"`
}

type ReleaseStats struct {
	TotalCatastrophes int     `json:"total_catastrophes"`
	AvgDamagePct      float64 `json:"avg_damage_pct"`
	WorstDayPct       float64 `json:"worst_day_pct"`
	Severity          string  `json:"severity"`
}

// TerminalState is the per-render view of the whole terminal: display mode,
// fabricated metrics, the ledger contents and the last sync outcome. It is
// recomputed on every call and never persisted.
type TerminalState struct {
	CrashMode     bool         `json:"crash_mode"`
	LatestRelease *Release     `json:"latest_release"`
	Metrics       Metrics      `json:"metrics"`
	Releases      []Release    `json:"releases"`
	ReleaseStats  ReleaseStats `json:"release_stats"`
	SpotifySync   SyncResult   `json:"spotify_sync"`
}
