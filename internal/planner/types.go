package planner

import (
	"path/filepath"

	"github.com/backmassage/extsort/internal/config"
)

// Options holds the inputs of a single build. It is passed by value and
// never mutated by Build.
type Options struct {
	SourceDir      string
	DestinationDir string
	ShowHidden     bool // Include dot-files.
	AllowRename    bool // Resolve collisions with dubbed_<n>- names instead of failing.
	FoldCase       bool // Lowercase extension buckets.
}

// OptionsFromConfig extracts the build inputs from a finalized Config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SourceDir:      cfg.SourceDir,
		DestinationDir: cfg.DestinationDir,
		ShowHidden:     cfg.ShowHidden,
		AllowRename:    cfg.AllowRename,
		FoldCase:       cfg.FoldCase,
	}
}

// Plan is the resolved mapping of one source file to its destination. It is
// produced by Build and consumed by the executor.
type Plan struct {
	SourcePath string // Source directory joined with the entry name.
	Name       string // Final name inside the bucket.
	Extension  string // Bucket name (see naming.Extension).
	Size       int64  // Bytes at plan time.
}

// OriginalName returns the file name the plan was built from.
func (p Plan) OriginalName() string {
	return filepath.Base(p.SourcePath)
}

// Renamed reports whether collision resolution changed the name.
func (p Plan) Renamed() bool {
	return p.Name != p.OriginalName()
}

// PlanSet owns the destination root and the ordered plans of one build.
// Executing it is not idempotent: once files are moved, their source paths
// are gone and a second execution fails.
type PlanSet struct {
	DestinationDir string
	Plans          []Plan
}

// Len returns the number of planned files.
func (ps *PlanSet) Len() int {
	return len(ps.Plans)
}

// BucketDir returns the directory that holds files of the given extension.
func (ps *PlanSet) BucketDir(ext string) string {
	return filepath.Join(ps.DestinationDir, ext)
}

// Target returns the full destination path of p.
func (ps *PlanSet) Target(p Plan) string {
	return filepath.Join(ps.BucketDir(p.Extension), p.Name)
}

// Buckets returns the distinct bucket names in first-seen order.
func (ps *PlanSet) Buckets() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range ps.Plans {
		if !seen[p.Extension] {
			seen[p.Extension] = true
			out = append(out, p.Extension)
		}
	}
	return out
}

// TotalBytes sums the planned file sizes.
func (ps *PlanSet) TotalBytes() int64 {
	var n int64
	for _, p := range ps.Plans {
		n += p.Size
	}
	return n
}
