package lock

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning indicates another run holds the lock for the directory.
var ErrAlreadyRunning = errors.New("another extsort run is already sorting this directory")

// Lock is a held per-directory run lock.
type Lock struct {
	path string
	fl   *flock.Flock
}

// PathFor returns the lock file path for dir.
func PathFor(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	sum := fmt.Sprintf("%x", sha256.Sum256([]byte(abs)))[:16]
	return filepath.Join(os.TempDir(), "extsort-"+sum+".lock"), nil
}

// Acquire takes the lock for dir without blocking. It returns
// ErrAlreadyRunning when the lock is held elsewhere.
func Acquire(dir string) (*Lock, error) {
	path, err := PathFor(dir)
	if err != nil {
		return nil, err
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.path }

// Release drops the lock. The lock file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
