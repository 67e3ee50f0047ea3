package app

import (
	"context"
	"math/rand"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
	"github.com/Joe-Bitz/goodmorninguganda/internal/ports"
)

// TerminalService derives the page's display state from one watcher cycle and
// the ledger. Everything except the ledger itself is recomputed per call.
type TerminalService struct {
	watcher  *Watcher
	releases ports.ReleaseStore

	// Damage samples a per-release damage percentage; injected in tests.
	Damage func() float64
}

func NewTerminalService(watcher *Watcher, releases ports.ReleaseStore) *TerminalService {
	return &TerminalService{
		watcher:  watcher,
		releases: releases,
		Damage:   func() float64 { return 58 + rand.Float64()*38 },
	}
}

func (s *TerminalService) BuildState(ctx context.Context) domain.TerminalState {
	sync := s.watcher.MaybeSync(ctx)
	releases := s.releases.Load(ctx)

	var latest *domain.Release
	if len(releases) > 0 {
		last := releases[len(releases)-1]
		latest = &last
	}
	crashMode := latest != nil

	var avg, worst float64
	if n := len(releases); n > 0 {
		sum := 0.0
		for range releases {
			d := round2(s.Damage())
			sum += d
			if d > worst {
				worst = d
			}
		}
		avg = round2(sum / float64(n))
	}
	stats := domain.ReleaseStats{
		TotalCatastrophes: len(releases),
		AvgDamagePct:      avg,
		WorstDayPct:       worst,
		Severity:          severity(crashMode, len(releases), avg),
	}

	metrics := makeMetrics()
	if crashMode {
		metrics = makeCrashMetrics()
	}

	return domain.TerminalState{
		CrashMode:     crashMode,
		LatestRelease: latest,
		Metrics:       metrics,
		Releases:      releases,
		ReleaseStats:  stats,
		SpotifySync:   sync,
	}
}

func severity(crashMode bool, total int, avgDamage float64) string {
	switch {
	case !crashMode:
		return "LOW"
	case total >= 6 || avgDamage >= 85:
		return "MAX"
	case total >= 3 || avgDamage >= 72:
		return "HIGH"
	default:
		return "MED"
	}
}
