package executor

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/backmassage/extsort/internal/planner"
	"github.com/backmassage/extsort/internal/sorterr"
)

func TestExecute_MovesIntoBuckets(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "alpha")
	write(t, src, "README", "readme")

	ps := buildPlan(t, src, dst)

	var results []Result
	err := Execute(context.Background(), ps, Options{OnMoved: func(r Result) { results = append(results, r) }})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	assertContent(t, filepath.Join(dst, "txt", "a.txt"), "alpha")
	assertContent(t, filepath.Join(dst, "indefinite", "README"), "readme")
	assertMissing(t, filepath.Join(src, "a.txt"))
	assertMissing(t, filepath.Join(src, "README"))

	if len(results) != 2 {
		t.Fatalf("OnMoved called %d times, want 2", len(results))
	}
	for _, r := range results {
		if !r.BucketCreated {
			t.Errorf("%s: BucketCreated = false, want true", r.Target)
		}
		if r.Copied {
			t.Errorf("%s: Copied = true on same filesystem", r.Target)
		}
	}
}

func TestExecute_ReusesExistingBucket(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "alpha")
	if err := os.Mkdir(filepath.Join(dst, "txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	ps := buildPlan(t, src, dst)
	var created bool
	err := Execute(context.Background(), ps, Options{OnMoved: func(r Result) { created = r.BucketCreated }})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if created {
		t.Error("BucketCreated = true for an existing bucket")
	}
}

func TestExecute_SecondRunFailsWithMoveError(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "alpha")

	ps := buildPlan(t, src, dst)
	if err := Execute(context.Background(), ps, Options{}); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	err := Execute(context.Background(), ps, Options{})
	if !errors.Is(err, sorterr.ErrMove) {
		t.Fatalf("second Execute err = %v, want ErrMove", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("second Execute err = %v, want cause ErrNotExist", err)
	}
	assertContent(t, filepath.Join(dst, "txt", "a.txt"), "alpha")
}

func TestExecute_TargetAppearedAfterPlanning(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "new")
	write(t, src, "b.txt", "bee")

	ps := buildPlan(t, src, dst)
	if err := os.Mkdir(filepath.Join(dst, "txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	write(t, filepath.Join(dst, "txt"), "a.txt", "existing")

	err := Execute(context.Background(), ps, Options{})
	if !errors.Is(err, sorterr.ErrMove) || !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("err = %v, want ErrMove wrapping ErrDestinationExists", err)
	}
	assertContent(t, filepath.Join(dst, "txt", "a.txt"), "existing")
	assertContent(t, filepath.Join(src, "a.txt"), "new")
	// Batch stops at the first failure.
	assertContent(t, filepath.Join(src, "b.txt"), "bee")
}

func TestExecute_PartialCompletionIsKept(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "alpha")
	write(t, src, "b.txt", "beta")

	ps := buildPlan(t, src, dst)
	if err := os.Remove(filepath.Join(src, "b.txt")); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), ps, Options{})
	if !errors.Is(err, sorterr.ErrMove) {
		t.Fatalf("err = %v, want ErrMove", err)
	}
	var se *sorterr.Error
	if !errors.As(err, &se) || se.Path != filepath.Join(src, "b.txt") {
		t.Errorf("error = %v, want it to name b.txt", err)
	}
	assertContent(t, filepath.Join(dst, "txt", "a.txt"), "alpha")
}

func TestExecute_BucketPathIsFile(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "alpha")
	write(t, dst, "txt", "not a dir")

	ps := buildPlan(t, src, dst)
	err := Execute(context.Background(), ps, Options{})
	if !errors.Is(err, sorterr.ErrDirectoryCreate) {
		t.Fatalf("err = %v, want ErrDirectoryCreate", err)
	}
	assertContent(t, filepath.Join(src, "a.txt"), "alpha")
}

func TestExecute_MissingDestinationRoot(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "alpha")

	ps := buildPlan(t, src, dst)
	ps.DestinationDir = filepath.Join(dst, "gone")

	err := Execute(context.Background(), ps, Options{})
	if !errors.Is(err, sorterr.ErrDirectoryCreate) {
		t.Fatalf("err = %v, want ErrDirectoryCreate", err)
	}
}

func TestExecute_CrossDeviceFallsBackToCopy(t *testing.T) {
	restore := SetRenameForTests(func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	})
	defer restore()

	src := t.TempDir()
	dst := t.TempDir()
	write(t, src, "a.txt", "alpha")
	if err := os.Chmod(filepath.Join(src, "a.txt"), 0o600); err != nil {
		t.Fatal(err)
	}

	ps := buildPlan(t, src, dst)
	var copied bool
	err := Execute(context.Background(), ps, Options{OnMoved: func(r Result) { copied = r.Copied }})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !copied {
		t.Error("Copied = false, want true")
	}
	target := filepath.Join(dst, "txt", "a.txt")
	assertContent(t, target, "alpha")
	assertMissing(t, filepath.Join(src, "a.txt"))

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestExecute_RenameFailureIsMoveError(t *testing.T) {
	restore := SetRenameForTests(func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EACCES}
	})
	defer restore()

	src := t.TempDir()
	write(t, src, "a.txt", "alpha")
	ps := buildPlan(t, src, t.TempDir())

	err := Execute(context.Background(), ps, Options{})
	if !errors.Is(err, sorterr.ErrMove) {
		t.Fatalf("err = %v, want ErrMove", err)
	}
	assertContent(t, filepath.Join(src, "a.txt"), "alpha")
}

func TestExecute_CancelledBeforeStart(t *testing.T) {
	src := t.TempDir()
	write(t, src, "a.txt", "alpha")
	ps := buildPlan(t, src, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Execute(ctx, ps, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	assertContent(t, filepath.Join(src, "a.txt"), "alpha")
}

// --- Helpers ---

func buildPlan(t *testing.T, src, dst string) *planner.PlanSet {
	t.Helper()
	ps, err := planner.Build(planner.Options{SourceDir: src, DestinationDir: dst})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ps
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func assertContent(t *testing.T, path, want string) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(b) != want {
		t.Errorf("%s = %q, want %q", path, b, want)
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%s still exists (err=%v)", path, err)
	}
}
