package jsonstore

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

// ReleaseLedger stores detected releases as a JSON array of {title, date}
// objects, in detection order.
type ReleaseLedger struct {
	store *fileStore
}

func NewReleaseLedger(path string) *ReleaseLedger {
	return &ReleaseLedger{store: newFileStore(path)}
}

// Load returns the ledger in insertion order. A missing file, a payload that
// is not an array, and entries that are not objects or lack a non-empty
// title/date are all dropped silently: corrupt storage must never fail a
// render.
func (l *ReleaseLedger) Load(ctx context.Context) []domain.Release {
	var out []domain.Release
	_ = l.store.withLock(ctx, func() error {
		out = l.loadLocked()
		return nil
	})
	return out
}

func (l *ReleaseLedger) loadLocked() []domain.Release {
	b, err := l.store.read()
	if err != nil || len(b) == 0 {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	out := make([]domain.Release, 0, len(raw))
	for _, entry := range raw {
		var rel domain.Release
		if err := json.Unmarshal(entry, &rel); err != nil {
			continue
		}
		rel.Title = strings.TrimSpace(rel.Title)
		rel.Date = strings.TrimSpace(rel.Date)
		if rel.Title == "" || rel.Date == "" {
			continue
		}
		out = append(out, rel)
	}
	return out
}

// AppendIfMissing inserts the (date, title) pair unless an identical pair
// already exists; the lock is held from load through save so two concurrent
// appends cannot both observe the pair as missing.
func (l *ReleaseLedger) AppendIfMissing(ctx context.Context, date, title string) (bool, error) {
	inserted := false
	err := l.store.withLock(ctx, func() error {
		releases := l.loadLocked()
		for _, r := range releases {
			if r.Date == date && r.Title == title {
				return nil
			}
		}
		releases = append(releases, domain.Release{Title: title, Date: date})

		b, err := json.MarshalIndent(releases, "", "  ")
		if err != nil {
			return err
		}
		if err := l.store.write(b); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	return inserted, err
}
