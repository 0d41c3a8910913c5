// Package runlock serializes non-dry runs over the same root directory with
// an advisory file lock kept outside the scanned tree.
package runlock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const retryDelay = 250 * time.Millisecond

// Lock is a held run lock.
type Lock struct {
	fl   *flock.Flock
	path string
}

// PathFor returns the lock file used for root inside dir.
func PathFor(dir, root string) string {
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(dir, hex.EncodeToString(sum[:8])+".lock")
}

// Acquire blocks until the lock for root is held or ctx is done.
func Acquire(ctx context.Context, dir, root string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", dir, err)
	}
	path := PathFor(dir, root)
	fl := flock.New(path)

	ok, err := fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("acquire lock %s: not acquired", path)
	}
	return &Lock{fl: fl, path: path}, nil
}

// TryAcquire attempts the lock once. held is false when another run owns it.
func TryAcquire(dir, root string) (l *Lock, held bool, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, false, fmt.Errorf("create lock directory %q: %w", dir, err)
	}
	path := PathFor(dir, root)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, false, nil
	}
	return &Lock{fl: fl, path: path}, true, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.path }

// Release unlocks. The lock file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
