package naming

import "testing"

func TestExtension(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		foldCase bool
		want     string
	}{
		{"simple", "a.txt", false, "txt"},
		{"case preserved", "report.PDF", false, "PDF"},
		{"case folded", "report.PDF", true, "pdf"},
		{"last dot wins", "archive.tar.gz", false, "gz"},
		{"hidden with extension", ".hidden.txt", false, "txt"},
		{"no extension", "README", false, IndefiniteBucket},
		{"leading dot only", ".bashrc", false, IndefiniteBucket},
		{"trailing dot", "trailing.", false, IndefiniteBucket},
		{"full path", "/src/dir/photo.jpg", false, "jpg"},
		{"dotted directory, bare file", "/src/v1.2/Makefile", false, IndefiniteBucket},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extension(tt.in, tt.foldCase); got != tt.want {
				t.Errorf("Extension(%q, %v) = %q, want %q", tt.in, tt.foldCase, got, tt.want)
			}
		})
	}
}
