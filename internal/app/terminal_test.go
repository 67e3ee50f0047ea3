package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Joe-Bitz/goodmorninguganda/internal/adapters/jsonstore"
	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

func terminalFixture(t *testing.T, releaseTitles ...string) *TerminalService {
	t.Helper()
	dir := t.TempDir()
	releases := jsonstore.NewReleaseLedger(filepath.Join(dir, "podcast_releases.json"))
	state := jsonstore.NewWatchStateStore(filepath.Join(dir, "spotify_watch_state.json"))

	for _, title := range releaseTitles {
		if _, err := releases.AppendIfMissing(context.Background(), "2026-01-15", title); err != nil {
			t.Fatalf("AppendIfMissing(%s): %v", title, err)
		}
	}

	watcher := NewWatcher(zerolog.Nop(), nil, nil, releases, state, "show1")
	watcher.Now = func() time.Time { return time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC) }

	svc := NewTerminalService(watcher, releases)
	svc.Damage = func() float64 { return 60 } // deterministic, below both thresholds
	return svc
}

func TestBuildState_EmptyLedger(t *testing.T) {
	state := terminalFixture(t).BuildState(context.Background())

	if state.CrashMode {
		t.Fatal("empty ledger must not be crash mode")
	}
	if state.LatestRelease != nil {
		t.Fatalf("latest release: want nil, got %+v", state.LatestRelease)
	}
	if state.ReleaseStats.Severity != "LOW" {
		t.Fatalf("severity: want LOW, got %q", state.ReleaseStats.Severity)
	}
	if state.SpotifySync.Reason != domain.ReasonWatchersDisabled {
		t.Fatalf("sync reason: want watchers_disabled, got %q", state.SpotifySync.Reason)
	}
}

func TestBuildState_SeverityTiers(t *testing.T) {
	cases := []struct {
		releases int
		want     string
	}{
		{1, "MED"},
		{2, "MED"},
		{3, "HIGH"},
		{5, "HIGH"},
		{6, "MAX"},
	}
	for _, tc := range cases {
		titles := make([]string, tc.releases)
		for i := range titles {
			titles[i] = "episode " + string(rune('a'+i))
		}
		state := terminalFixture(t, titles...).BuildState(context.Background())

		if !state.CrashMode {
			t.Fatalf("n=%d: want crash mode", tc.releases)
		}
		if got := state.ReleaseStats.Severity; got != tc.want {
			t.Fatalf("n=%d: severity want %q, got %q", tc.releases, tc.want, got)
		}
		if state.ReleaseStats.TotalCatastrophes != tc.releases {
			t.Fatalf("n=%d: total %d", tc.releases, state.ReleaseStats.TotalCatastrophes)
		}
	}
}

func TestBuildState_HighAverageDamageEscalates(t *testing.T) {
	svc := terminalFixture(t, "only one")
	svc.Damage = func() float64 { return 90 }

	state := svc.BuildState(context.Background())
	if got := state.ReleaseStats.Severity; got != "MAX" {
		t.Fatalf("severity: want MAX for avg 90, got %q", got)
	}
	if state.ReleaseStats.AvgDamagePct != 90 || state.ReleaseStats.WorstDayPct != 90 {
		t.Fatalf("unexpected stats: %+v", state.ReleaseStats)
	}
}

func TestBuildState_LatestReleaseIsLastEntry(t *testing.T) {
	state := terminalFixture(t, "first", "second", "third").BuildState(context.Background())

	if state.LatestRelease == nil || state.LatestRelease.Title != "third" {
		t.Fatalf("latest release: want \"third\", got %+v", state.LatestRelease)
	}
}

func TestSeverity(t *testing.T) {
	cases := []struct {
		crash bool
		total int
		avg   float64
		want  string
	}{
		{false, 0, 0, "LOW"},
		{true, 1, 60, "MED"},
		{true, 1, 72, "HIGH"},
		{true, 1, 85, "MAX"},
		{true, 3, 60, "HIGH"},
		{true, 6, 60, "MAX"},
	}
	for _, tc := range cases {
		if got := severity(tc.crash, tc.total, tc.avg); got != tc.want {
			t.Fatalf("severity(%v,%d,%.0f): want %q, got %q", tc.crash, tc.total, tc.avg, tc.want, got)
		}
	}
}
