package naming

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IndefiniteBucket is the bucket for files without a dot-delimited extension.
const IndefiniteBucket = "indefinite"

var lower = cases.Lower(language.Und)

// Extension returns the bucket name for a file name: the substring after the
// last dot, case preserved unless foldCase is set.
//
//	report.PDF      → "PDF" ("pdf" with foldCase)
//	archive.tar.gz  → "gz"
//	.hidden.txt     → "txt"
//	README, .bashrc → "indefinite"
//	trailing.       → "indefinite"
func Extension(name string, foldCase bool) string {
	base := filepath.Base(name)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return IndefiniteBucket
	}
	ext := base[idx+1:]
	if foldCase {
		return lower.String(ext)
	}
	return ext
}
