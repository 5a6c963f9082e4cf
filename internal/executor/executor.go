package executor

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/backmassage/extsort/internal/planner"
	"github.com/backmassage/extsort/internal/sorterr"
)

const defaultDirPerm os.FileMode = 0o755

// Result describes one completed move.
type Result struct {
	Plan          planner.Plan
	Target        string // Full destination path.
	BucketCreated bool   // The bucket directory was created for this file.
	Copied        bool   // Moved by copy + remove (cross-device).
}

// Options tunes Execute.
type Options struct {
	DirPerm os.FileMode  // Bucket directory mode; 0 means 0755.
	OnMoved func(Result) // Called after each successful move; may be nil.
}

// Execute moves every planned file into its bucket, in plan order. The
// context is checked between files only; a move in progress always runs to
// completion. The first failure is returned as a [sorterr.ErrDirectoryCreate]
// or [sorterr.ErrMove] error and the remaining plans are not attempted.
//
// Execute is not idempotent. Running it again on the same PlanSet fails with
// ErrMove because the source paths no longer exist.
func Execute(ctx context.Context, ps *planner.PlanSet, opts Options) error {
	perm := opts.DirPerm
	if perm == 0 {
		perm = defaultDirPerm
	}

	for _, plan := range ps.Plans {
		if err := ctx.Err(); err != nil {
			return err
		}

		bucket := ps.BucketDir(plan.Extension)
		created, err := ensureBucket(bucket, perm)
		if err != nil {
			return err
		}

		target := ps.Target(plan)
		copied, err := moveFile(plan.SourcePath, target)
		if err != nil {
			return sorterr.New(sorterr.ErrMove, plan.SourcePath, err)
		}

		if opts.OnMoved != nil {
			opts.OnMoved(Result{
				Plan:          plan,
				Target:        target,
				BucketCreated: created,
				Copied:        copied,
			})
		}
	}
	return nil
}

// ensureBucket creates dir (one level, parent must exist) unless it is
// already a directory. It reports whether it created dir.
func ensureBucket(dir string, perm os.FileMode) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil

	case err == nil:
		return false, sorterr.New(sorterr.ErrDirectoryCreate, dir, errNotDirectory)

	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(dir, perm); err != nil {
			return false, sorterr.New(sorterr.ErrDirectoryCreate, dir, err)
		}
		return true, nil

	default:
		return false, sorterr.New(sorterr.ErrDirectoryCreate, dir, err)
	}
}
