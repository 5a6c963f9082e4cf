package executor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// Move failure causes, wrapped inside sorterr.ErrMove.
var (
	ErrDestinationExists = errors.New("destination already exists")
	errNotDirectory      = errors.New("exists and is not a directory")
)

// rename is swapped by SetRenameForTests.
var rename = os.Rename

// moveFile relocates src to dst. dst must not exist: a file that appeared
// there after planning is reported instead of overwritten. When src and dst
// live on different filesystems the file is copied and src removed; copied
// reports that path was taken.
func moveFile(src, dst string) (copied bool, err error) {
	if _, err := os.Lstat(src); err != nil {
		return false, err
	}
	if _, err := os.Lstat(dst); err == nil {
		return false, fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	renameErr := rename(src, dst)
	if renameErr == nil {
		return false, nil
	}
	if !isCrossDevice(renameErr) {
		return false, renameErr
	}

	if err := copyFile(src, dst); err != nil {
		return false, fmt.Errorf("copy across devices: %w", err)
	}
	if err := os.Remove(src); err != nil {
		// Keep a single copy of the file: drop the new one, leave the source.
		_ = os.Remove(dst)
		return false, fmt.Errorf("remove source after copy: %w", err)
	}
	return true, nil
}

// isCrossDevice reports whether err is a rename failure caused by src and
// dst being on different filesystems.
func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}

// copyFile streams src into a new file at dst, preserving mode and
// modification time. dst is created exclusively and removed on failure.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(dst)
		}
	}()

	written, err := io.Copy(out, in)
	if err != nil {
		return err
	}
	if written != info.Size() {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), written)
	}
	if err = out.Sync(); err != nil {
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
