// Package config holds runtime configuration: defaults, the optional TOML
// config file, CLI flag binding, and validation.
//
// Precedence is defaults < config file < flags the user actually set. Once
// all layers are applied, [Config.Finalize] resolves the directory defaults
// and the resulting value is treated as read-only.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ParseColorMode validates a color mode string (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] and [Flags.Apply], and finally [Config.Finalize].
type Config struct {
	// Paths. DestinationDir follows SourceDir unless set explicitly.
	SourceDir      string
	DestinationDir string

	// Planning.
	ShowHidden  bool // Include dot-files.
	AllowRename bool // Rename collisions to dubbed_<n>-<name> instead of failing.
	FoldCase    bool // Lowercase extension buckets (JPG and jpg share one bucket).

	// Execution.
	DryRun   bool // Plan and report only.
	NoLock   bool // Skip the per-source single-instance lock.
	Progress bool // Default: true. Progress bar on TTYs.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path (appended).
	CheckOnly bool      // Run --check diagnostics and exit.

	// ConfigFile is the TOML file that was loaded, if any.
	ConfigFile string
}

// DefaultConfig returns a Config with built-in defaults. SourceDir is left
// empty and resolved to the working directory by [Config.Finalize].
func DefaultConfig() Config {
	return Config{
		ShowHidden:  false,
		AllowRename: false,
		FoldCase:    false,
		DryRun:      false,
		NoLock:      false,
		Progress:    true,
		Verbose:     false,
		ColorMode:   ColorAuto,
		CheckOnly:   false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Finalize resolves directory defaults: SourceDir falls back to cwd, and
// DestinationDir falls back to SourceDir when it was not set by any layer.
func (c *Config) Finalize(cwd string) {
	if c.SourceDir == "" {
		c.SourceDir = cwd
	}
	c.SourceDir = NormalizeDirArg(c.SourceDir)
	if c.DestinationDir == "" {
		c.DestinationDir = c.SourceDir
	}
	c.DestinationDir = NormalizeDirArg(c.DestinationDir)
}

// Validate checks enum fields and, unless CheckOnly, that both directory
// paths are set. Directory existence is checked later by the planner.
func (c *Config) Validate() error {
	if _, err := ParseColorMode(string(c.ColorMode)); err != nil {
		return err
	}
	if c.CheckOnly {
		return nil
	}
	if c.SourceDir == "" || c.DestinationDir == "" {
		return errors.New("source and destination directories must not be empty")
	}
	return nil
}
