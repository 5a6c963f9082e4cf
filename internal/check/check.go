// Package check provides the --check diagnostics: it verifies the source and
// destination directories are usable and previews what a run would do.
package check

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/backmassage/extsort/internal/config"
	"github.com/backmassage/extsort/internal/planner"
)

// Sentinel errors returned by the directory checks.
var (
	ErrNotDirectory          = errors.New("not a directory")
	ErrSourceInaccessible    = errors.New("source directory needs read, write and search permission")
	ErrDestinationUnwritable = errors.New("destination directory needs write and search permission")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck reports whether the source and destination directories can be
// used, whether moves will cross a filesystem boundary, and a dry plan
// summary. It returns false when a hard requirement fails.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Directory Check ===")

	ok := true
	if err := CheckSource(cfg.SourceDir); err != nil {
		log.Error("Source: %v", err)
		ok = false
	} else {
		log.Success("Source: %s", cfg.SourceDir)
	}

	if err := CheckDestination(cfg.DestinationDir); err != nil {
		log.Error("Destination: %v", err)
		ok = false
	} else {
		log.Success("Destination: %s", cfg.DestinationDir)
	}

	if !ok {
		return false
	}

	checkSameDevice(cfg, log)
	checkPlan(cfg, log)
	return true
}

// CheckSource verifies dir is a directory files can be listed and removed from.
func CheckSource(dir string) error {
	if err := requireDir(dir); err != nil {
		return err
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceInaccessible, dir, err)
	}
	return nil
}

// CheckDestination verifies dir is a directory buckets can be created in.
func CheckDestination(dir string) error {
	if err := requireDir(dir); err != nil {
		return err
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDestinationUnwritable, dir, err)
	}
	return nil
}

// SameDevice reports whether a and b live on the same filesystem.
func SameDevice(a, b string) (bool, error) {
	var sa, sb unix.Stat_t
	if err := unix.Stat(a, &sa); err != nil {
		return false, err
	}
	if err := unix.Stat(b, &sb); err != nil {
		return false, err
	}
	return sa.Dev == sb.Dev, nil
}

// --- internal helpers ---

func requireDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return nil
}

// checkSameDevice warns when moves will fall back to copy + remove.
func checkSameDevice(cfg *config.Config, log Logger) {
	same, err := SameDevice(cfg.SourceDir, cfg.DestinationDir)
	if err != nil {
		log.Warn("Could not compare filesystems: %v", err)
		return
	}
	if same {
		log.Success("Same filesystem: files will be renamed in place")
	} else {
		log.Warn("Different filesystems: files will be copied, then removed from the source")
	}
}

// checkPlan builds the plan without moving anything and reports its size or
// the error a real run would stop on.
func checkPlan(cfg *config.Config, log Logger) {
	ps, err := planner.Build(planner.OptionsFromConfig(cfg))
	if err != nil {
		log.Warn("Plan: %v", err)
		return
	}
	renamed := 0
	for _, p := range ps.Plans {
		if p.Renamed() {
			renamed++
		}
	}
	log.Info("Plan: %d files into %d buckets (%d renamed)", ps.Len(), len(ps.Buckets()), renamed)
}
