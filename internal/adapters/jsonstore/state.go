package jsonstore

import (
	"context"
	"encoding/json"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

// WatchStateStore holds the single watch watermark record as a JSON object.
type WatchStateStore struct {
	store *fileStore
}

func NewWatchStateStore(path string) *WatchStateStore {
	return &WatchStateStore{store: newFileStore(path)}
}

// Load returns the stored watermark. Absent or unparseable state loads as the
// zero value so the watcher always has a well-defined starting point.
func (s *WatchStateStore) Load(ctx context.Context) domain.WatchState {
	var state domain.WatchState
	_ = s.store.withLock(ctx, func() error {
		b, err := s.store.read()
		if err != nil || len(b) == 0 {
			return nil
		}
		var decoded domain.WatchState
		if err := json.Unmarshal(b, &decoded); err == nil {
			state = decoded
		}
		return nil
	})
	return state
}

// Save overwrites the whole record.
func (s *WatchStateStore) Save(ctx context.Context, state domain.WatchState) error {
	return s.store.withLock(ctx, func() error {
		b, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return err
		}
		return s.store.write(b)
	})
}
