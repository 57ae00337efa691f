// Package runlock enforces one warm-up run at a time. Concurrent runs
// would issue overlapping accessibility calls, which the platform daemon
// handles badly, so a second instance is refused instead of queued.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld reports that another axwarm instance holds the lock.
var ErrHeld = errors.New("another axwarm instance is already running")

// Lock is a file-based single-instance lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// New prepares a lock at path without acquiring it.
func New(path string) *Lock {
	return &Lock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock, failing immediately with ErrHeld when another
// process holds it.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("%w (lock: %s)", ErrHeld, l.path)
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
