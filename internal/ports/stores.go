package ports

import (
	"context"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

// ReleaseStore is the durable, deduplicated, append-only release ledger.
type ReleaseStore interface {
	// Load returns the ledger in insertion order. Unreadable or malformed
	// storage loads as empty rather than failing the caller.
	Load(ctx context.Context) []domain.Release
	// AppendIfMissing inserts the (date, title) pair unless an identical pair
	// already exists. Returns true only when an insert actually occurred.
	AppendIfMissing(ctx context.Context, date, title string) (bool, error)
}

// StateStore holds the single watch watermark record.
type StateStore interface {
	// Load returns the current watermark, or the zero value when the record
	// is absent or corrupt.
	Load(ctx context.Context) domain.WatchState
	// Save overwrites the whole record.
	Save(ctx context.Context, state domain.WatchState) error
}
