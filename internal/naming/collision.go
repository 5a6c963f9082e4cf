package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/backmassage/extsort/internal/sorterr"
)

// maxRenameAttempts bounds the dubbed_<n> probe for a single file.
const maxRenameAttempts = 10000

// DubbedName returns the collision-avoiding variant of name for counter.
func DubbedName(counter int, name string) string {
	return fmt.Sprintf("dubbed_%d-%s", counter, name)
}

// Resolver picks final destination names. A path counts as taken when it
// exists on disk at call time or was already returned by this Resolver.
// All methods are goroutine-safe.
type Resolver struct {
	mu      sync.Mutex
	claimed map[string]struct{} // bucket path → claimed during this build
}

// NewResolver creates a ready-to-use resolver.
func NewResolver() *Resolver {
	return &Resolver{claimed: make(map[string]struct{})}
}

// Resolve returns the name under which a file called name should be stored in
// bucketDir. A missing bucketDir is not an error: nothing can collide there.
// When name is taken, Resolve fails with [sorterr.ErrCollision] unless
// allowRename is set, in which case the first free dubbed_<n>-<name> with
// n = 1, 2, ... is returned.
func (r *Resolver) Resolve(name, bucketDir string, allowRename bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := filepath.Join(bucketDir, name)
	free, err := r.isFree(path)
	if err != nil {
		return "", err
	}
	if free {
		r.claimed[path] = struct{}{}
		return name, nil
	}
	if !allowRename {
		return "", sorterr.New(sorterr.ErrCollision, path, nil)
	}

	for counter := 1; counter <= maxRenameAttempts; counter++ {
		candidate := DubbedName(counter, name)
		cpath := filepath.Join(bucketDir, candidate)
		free, err := r.isFree(cpath)
		if err != nil {
			return "", err
		}
		if free {
			r.claimed[cpath] = struct{}{}
			return candidate, nil
		}
	}
	return "", sorterr.New(sorterr.ErrCollision, path,
		fmt.Errorf("no free name after %d attempts", maxRenameAttempts))
}

// isFree reports whether path is neither claimed nor present on disk.
// ENOTDIR means a bucket component is a regular file; the move step reports
// that when it tries to create the bucket.
func (r *Resolver) isFree(path string) (bool, error) {
	if _, ok := r.claimed[path]; ok {
		return false, nil
	}
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return true, nil
	default:
		return false, sorterr.New(sorterr.ErrDirectoryRead, filepath.Dir(path), err)
	}
}

// ValidateName rejects names that cannot be stored as a single path segment.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return sorterr.New(sorterr.ErrInvalidPath, name, nil)
	}
	return nil
}
