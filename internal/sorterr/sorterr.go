// Package sorterr defines the error kinds shared by planning and execution.
//
// Every failure is an [*Error] carrying one of the sentinel kinds below, the
// path it concerns, and the underlying cause. Callers test the kind with
// errors.Is:
//
//	if errors.Is(err, sorterr.ErrCollision) { ... }
//
// The cause stays reachable too, so errors.Is(err, fs.ErrNotExist) works on a
// move that failed because the source vanished.
package sorterr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds.
var (
	// ErrDirectoryNotFound indicates the source or destination root is missing
	// or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrDirectoryRead indicates a directory listing or probe failed.
	ErrDirectoryRead = errors.New("cannot read directory")

	// ErrDirectoryCreate indicates a bucket directory could not be created.
	ErrDirectoryCreate = errors.New("cannot create directory")

	// ErrCollision indicates the destination name is taken and renaming is
	// disabled (or no free name was found).
	ErrCollision = errors.New("file already exists in target directory")

	// ErrMove indicates a file could not be relocated into its bucket.
	ErrMove = errors.New("cannot move file")

	// ErrInvalidPath indicates an entry without a usable file name.
	ErrInvalidPath = errors.New("invalid file path")
)

// Error is a kind-tagged failure concerning a single path.
type Error struct {
	Kind error  // One of the package sentinels.
	Path string // Directory or file the failure concerns.
	Err  error  // Underlying cause; may be nil.
}

// New returns an *Error of the given kind.
func New(kind error, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// Error renders "<kind>: <path>: <cause>", omitting empty parts.
func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the sentinel kind of err, or nil when err carries none.
func KindOf(err error) error {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return nil
}
