package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/afero"

	"deskorg/internal/faults"
	"deskorg/internal/fileutil"
	"deskorg/internal/logging"
	"deskorg/internal/textutil"
)

const maxCollisionAttempts = 10000

// Mover relocates files without overwriting anything at the destination.
type Mover struct {
	fs     afero.Fs
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMover constructs a Mover on fs.
func NewMover(fs afero.Fs, logger *slog.Logger) *Mover {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Mover{
		fs:     fs,
		logger: logging.NewComponentLogger(logger, "mover"),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Place moves src into destDir and returns the final path. destDir and its
// ancestors are created as needed. When the name is taken, "_1", "_2", ...
// is appended before the extension. On error src is left in place.
func (m *Mover) Place(ctx context.Context, src, destDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lock := m.lockFor(destDir)
	lock.Lock()
	defer lock.Unlock()

	if err := m.fs.MkdirAll(destDir, 0o755); err != nil {
		return "", faults.Wrap(faults.ErrFileSystem, "moving", "ensure destination", destDir, err)
	}
	target, err := m.nextFreePath(destDir, filepath.Base(src))
	if err != nil {
		return "", faults.Wrap(faults.ErrFileSystem, "moving", "allocate filename", destDir, err)
	}

	renameErr := m.fs.Rename(src, target)
	if renameErr == nil {
		return target, nil
	}
	if !errors.Is(renameErr, syscall.EXDEV) {
		return "", faults.Wrap(faults.ErrFileSystem, "moving", "rename", filepath.Base(src), renameErr)
	}

	logger := logging.WithContext(ctx, m.logger)
	logger.Debug("cross-device move, copying", logging.String("target", target))
	if err := fileutil.CopyFileVerified(m.fs, src, target); err != nil {
		return "", faults.Wrap(faults.ErrFileSystem, "moving", "copy across devices", filepath.Base(src), err)
	}
	if err := m.fs.Remove(src); err != nil {
		logging.WarnWithContext(logger, "failed to remove source file after copy", "move_source_cleanup",
			logging.String("source", src),
			logging.String("target", target),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "delete the original by hand once the copy is checked"),
			logging.String(logging.FieldImpact, "file now exists in both places"),
		)
	}
	return target, nil
}

func (m *Mover) lockFor(dir string) *sync.Mutex {
	key := filepath.Clean(dir)
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	return lock
}

func (m *Mover) nextFreePath(dir, name string) (string, error) {
	stem := textutil.Stem(name)
	ext := strings.TrimPrefix(name, stem)
	for attempt := 0; attempt <= maxCollisionAttempts; attempt++ {
		candidate := name
		if attempt > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, attempt, ext)
		}
		path := filepath.Join(dir, candidate)
		if _, err := m.fs.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return path, nil
			}
			return "", err
		}
	}
	return "", fmt.Errorf("exhausted filename slots for %s in %s", name, dir)
}
