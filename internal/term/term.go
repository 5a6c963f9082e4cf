// Package term holds the ANSI color state shared by the logger and the
// banner, and answers whether a stream is an interactive terminal.
//
// The color variables are empty strings while colors are off, so callers
// concatenate them unconditionally.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/extsort/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

type palette struct {
	red, green, yellow, blue, cyan, magenta, reset string
}

var ansi = palette{
	red:     "\033[1;91m",
	green:   "\033[1;92m",
	yellow:  "\033[1;93m",
	blue:    "\033[1;94m",
	cyan:    "\033[1;96m",
	magenta: "\033[1;95m",
	reset:   "\033[0m",
}

// Configure turns colors on or off for mode, judging ColorAuto against
// stdout. It is called once by logging.NewLogger.
func Configure(mode config.ColorMode) {
	if UseColor(mode, os.Stdout) {
		apply(ansi)
	} else {
		apply(palette{})
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// UseColor decides whether output to f should be colored. ColorAuto needs
// a terminal, an unset NO_COLOR (https://no-color.org) and a TERM other
// than "dumb".
func UseColor(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(f)
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo-terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func apply(p palette) {
	Red, Green, Yellow, Blue = p.red, p.green, p.yellow, p.blue
	Cyan, Magenta, NC = p.cyan, p.magenta, p.reset
}
