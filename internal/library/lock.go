package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// lockRetry is how often a blocked Lock polls the lock file.
const lockRetry = 500 * time.Millisecond

// lockNamespace scopes the UUIDv5 lock names.
var lockNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("teaser:library-lock"))

// RunLock is a held per-library lock.
type RunLock struct {
	path string
	lock *flock.Flock
}

// LockPath returns the lock file used for root. Equal roots share a path.
func LockPath(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve library root: %w", err)
	}
	name := uuid.NewSHA1(lockNamespace, []byte(filepath.Clean(abs))).String()
	return filepath.Join(os.TempDir(), "teaser-"+name+".lock"), nil
}

// Lock blocks until the lock for root is held or ctx is done.
func Lock(ctx context.Context, root string) (*RunLock, error) {
	path, err := LockPath(root)
	if err != nil {
		return nil, err
	}
	fl := flock.New(path)
	ok, err := fl.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &RunLock{path: path, lock: fl}, nil
}

// TryLock acquires the lock for root without waiting. A lock held elsewhere
// returns ErrLocked.
func TryLock(root string) (*RunLock, error) {
	path, err := LockPath(root)
	if err != nil {
		return nil, err
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &RunLock{path: path, lock: fl}, nil
}

// Path returns the lock file path.
func (l *RunLock) Path() string { return l.path }

// Unlock releases the lock. The lock file is left in place.
func (l *RunLock) Unlock() error {
	return l.lock.Unlock()
}
