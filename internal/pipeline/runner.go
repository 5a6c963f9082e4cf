package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/extsort/internal/config"
	"github.com/backmassage/extsort/internal/display"
	"github.com/backmassage/extsort/internal/executor"
	"github.com/backmassage/extsort/internal/lock"
	"github.com/backmassage/extsort/internal/logging"
	"github.com/backmassage/extsort/internal/planner"
	"github.com/backmassage/extsort/internal/term"
)

// Run is the top-level entry point. It plans every file in cfg.SourceDir,
// then either prints the plan (dry run) or moves the files, and returns
// aggregate stats. The returned error is the first planning or moving
// failure; files moved before it stay moved.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	if !cfg.NoLock {
		lk, err := lock.Acquire(cfg.SourceDir)
		if err != nil {
			return stats, err
		}
		defer func() {
			if err := lk.Release(); err != nil {
				log.Warn("Failed to release lock %s: %v", lk.Path(), err)
			}
		}()
		log.Debug(cfg.Verbose, "Lock: %s", lk.Path())
	}

	// --- Plan ---
	ps, err := planner.Build(planner.OptionsFromConfig(cfg))
	if err != nil {
		return stats, err
	}

	stats.Total = ps.Len()
	for _, p := range ps.Plans {
		if p.Renamed() {
			stats.Renamed++
		}
	}
	logBatchHeader(cfg, log, ps)

	if stats.Total == 0 {
		log.Warn("No files to sort in %s", cfg.SourceDir)
		return stats, nil
	}

	// --- Dry-run ---
	if cfg.DryRun {
		fmt.Println(display.RenderPlan(ps))
		log.Success("[DRY] Would move %d files into %d buckets", stats.Total, len(ps.Buckets()))
		return stats, nil
	}

	// --- Execute ---
	bar := newProgress(cfg, stats.Total)
	err = executor.Execute(ctx, ps, executor.Options{
		OnMoved: func(r executor.Result) {
			stats.Moved++
			stats.Bytes += r.Plan.Size
			if r.BucketCreated {
				stats.BucketsCreated++
				log.Debug(cfg.Verbose, "Created %s", filepath.Dir(r.Target))
			}
			if r.Copied {
				stats.Copied++
			}
			log.Debug(cfg.Verbose, "%s -> %s", r.Plan.OriginalName(), filepath.Join(r.Plan.Extension, r.Plan.Name))
			if bar != nil {
				_ = bar.Add(1)
			}
		},
	})
	if bar != nil {
		_ = bar.Finish()
	}

	logSummary(log, &stats)
	return stats, err
}

// newProgress returns a progress bar on interactive stderr, or nil when
// disabled, verbose (per-file lines would interleave), or not a TTY.
func newProgress(cfg *config.Config, total int) *progressbar.ProgressBar {
	if !cfg.Progress || cfg.Verbose || !term.IsTerminal(os.Stderr) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Sorting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, ps *planner.PlanSet) {
	log.Info("Found %d files (%s) for %d buckets", ps.Len(), display.FormatBytes(ps.TotalBytes()), len(ps.Buckets()))
	if cfg.AllowRename {
		log.Info("Collisions: rename to dubbed_<n>-<name>")
	}
	if cfg.ShowHidden {
		log.Info("Hidden files: included")
	}
	for _, p := range ps.Plans {
		if p.Renamed() {
			log.Warn("Rename: %s -> %s", p.OriginalName(), filepath.Join(p.Extension, p.Name))
		}
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("")
	log.Info("=== Summary ===")
	log.Info("Planned:         %d", stats.Total)
	log.Success("Moved:           %d (%s)", stats.Moved, display.FormatBytes(stats.Bytes))
	if stats.Renamed > 0 {
		log.Info("Renamed:         %d", stats.Renamed)
	}
	log.Info("Buckets created: %d", stats.BucketsCreated)
	if stats.Copied > 0 {
		log.Info("Copied across filesystems: %d", stats.Copied)
	}
	if n := stats.Remaining(); n > 0 {
		log.Warn("Not moved:       %d", n)
	}
}
