package planner

import (
	"io/fs"
	"strings"
)

// IsHidden reports whether name is a dot-file.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Eligible reports whether a directory entry should be planned. Only regular
// files qualify: directories, symlinks (to files or directories), devices,
// sockets and pipes are skipped. Hidden files require showHidden.
func Eligible(entry fs.DirEntry, showHidden bool) bool {
	if !entry.Type().IsRegular() {
		return false
	}
	return showHidden || !IsHidden(entry.Name())
}
