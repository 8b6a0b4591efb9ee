package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock taken in the root during apply runs.
const LockFileName = ".deskorg.lock"

// Locker takes an exclusive lock on root and returns its release function.
type Locker func(root string) (release func(), err error)

// FileLocker locks root with an flock(2) on LockFileName. A second process
// organizing the same root fails instead of waiting.
func FileLocker(root string) (func(), error) {
	path := filepath.Join(root, LockFileName)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another deskorg run holds %s", path)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(path)
	}, nil
}
