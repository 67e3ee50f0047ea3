// Package jsonstore persists the release ledger and watch state as small
// JSON files, overwritten whole on every save. Each store holds an exclusive
// lock spanning its load-modify-save cycle: a process-local mutex plus a
// flock on a sibling .lock file so concurrent server processes cannot race
// on the same data directory.
package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const lockRetryDelay = 25 * time.Millisecond

type fileStore struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

func newFileStore(path string) *fileStore {
	return &fileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

func (s *fileStore) withLock(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return errors.Wrap(err, "acquire file lock")
	}
	if !ok {
		return errors.New("file lock not acquired")
	}
	defer func() { _ = s.lock.Unlock() }()

	return fn()
}

// read returns the raw file contents, or nil when the file does not exist.
func (s *fileStore) read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read store file")
	}
	return b, nil
}

func (s *fileStore) write(b []byte) error {
	return errors.Wrap(os.WriteFile(s.path, b, 0o644), "write store file")
}
