package planner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/extsort/internal/naming"
	"github.com/backmassage/extsort/internal/sorterr"
)

// Build produces the PlanSet for one run. Nothing on disk is modified.
//
// Flow:
//  1. Both roots must exist and be directories
//  2. List the source directory (immediate entries only)
//  3. Keep regular files; keep dot-files only with ShowHidden
//  4. Bucket each file by extension under DestinationDir
//  5. Resolve the final name; the first failure aborts the whole build
func Build(opts Options) (*PlanSet, error) {
	if err := requireDir(opts.SourceDir); err != nil {
		return nil, err
	}
	if err := requireDir(opts.DestinationDir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(opts.SourceDir)
	if err != nil {
		return nil, sorterr.New(sorterr.ErrDirectoryRead, opts.SourceDir, err)
	}

	ps := &PlanSet{DestinationDir: opts.DestinationDir}
	resolver := naming.NewResolver()

	for _, entry := range entries {
		if !Eligible(entry, opts.ShowHidden) {
			continue
		}
		plan, err := planEntry(opts, ps, resolver, entry)
		if err != nil {
			return nil, err
		}
		ps.Plans = append(ps.Plans, plan)
	}
	return ps, nil
}

// planEntry computes the Plan for one eligible entry.
func planEntry(opts Options, ps *PlanSet, resolver *naming.Resolver, entry fs.DirEntry) (Plan, error) {
	source := filepath.Join(opts.SourceDir, entry.Name())

	info, err := entry.Info()
	if err != nil {
		return Plan{}, sorterr.New(sorterr.ErrDirectoryRead, source, err)
	}

	ext := naming.Extension(entry.Name(), opts.FoldCase)
	name, err := resolver.Resolve(entry.Name(), ps.BucketDir(ext), opts.AllowRename)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		SourcePath: source,
		Name:       name,
		Extension:  ext,
		Size:       info.Size(),
	}, nil
}

// requireDir fails with ErrDirectoryNotFound unless path is an existing
// directory. Writability is not checked.
func requireDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return sorterr.New(sorterr.ErrDirectoryNotFound, path, err)
	}
	if !fi.IsDir() {
		return sorterr.New(sorterr.ErrDirectoryNotFound, path, fmt.Errorf("not a directory"))
	}
	return nil
}
