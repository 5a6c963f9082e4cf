package executor

// SetRenameForTests overrides the rename primitive during tests.
func SetRenameForTests(fn func(oldpath, newpath string) error) func() {
	previous := rename
	rename = fn
	return func() {
		rename = previous
	}
}
