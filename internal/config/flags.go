package config

// This file binds CLI flags to Config.
// Flags are captured into a separate struct and applied after the config
// file, and only when the user actually passed them, so file values survive
// unless overridden on the command line.

import (
	"github.com/spf13/pflag"
)

// Flags holds parsed flag values until [Flags.Apply] copies the ones the user
// set into a Config.
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath string

	output     string
	force      bool
	hidden     bool
	foldCase   bool
	dryRun     bool
	noLock     bool
	noProgress bool
	verbose    bool
	forceColor bool
	noColor    bool
	logFile    string
	checkOnly  bool
}

// RegisterFlags defines all sorting, display and utility flags on fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Configuration file path (default ~/.config/extsort/config.toml)")

	// Sorting.
	fs.StringVarP(&f.output, "output", "o", "", "Destination directory (default: source directory)")
	fs.BoolVarP(&f.force, "force", "f", false, "Rename colliding files to dubbed_<n>-<name> instead of failing")
	fs.BoolVarP(&f.hidden, "hidden", "a", false, "Include hidden files")
	fs.BoolVar(&f.foldCase, "fold-case", false, "Lowercase extension directories")
	fs.BoolVarP(&f.dryRun, "dry-run", "d", false, "Show the plan; do not move anything")
	fs.BoolVar(&f.noLock, "no-lock", false, "Do not take the per-directory run lock")

	// Display.
	fs.BoolVar(&f.noProgress, "no-progress", false, "Disable the progress bar")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&f.logFile, "log", "l", "", "Append logs to file")

	// Utility.
	fs.BoolVar(&f.checkOnly, "check", false, "Run directory diagnostics and exit")

	return f
}

// Apply copies every flag the user set into cfg.
func (f *Flags) Apply(cfg *Config) {
	changed := f.fs.Changed

	if changed("output") {
		cfg.DestinationDir = f.output
	}
	if changed("force") {
		cfg.AllowRename = f.force
	}
	if changed("hidden") {
		cfg.ShowHidden = f.hidden
	}
	if changed("fold-case") {
		cfg.FoldCase = f.foldCase
	}
	if changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if changed("no-lock") {
		cfg.NoLock = f.noLock
	}
	if changed("no-progress") {
		cfg.Progress = !f.noProgress
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if changed("log") {
		cfg.LogFile = f.logFile
	}
	if changed("check") {
		cfg.CheckOnly = f.checkOnly
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// ApplyArgs sets SourceDir from the optional positional argument.
func ApplyArgs(cfg *Config, args []string) {
	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}
}
