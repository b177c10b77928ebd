package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fatalRecorder captures Fatalf so failure paths can be asserted.
type fatalRecorder struct {
	testing.TB
	failed bool
	msg    string
}

func (r *fatalRecorder) Helper() {}

func (r *fatalRecorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
}

func (r *fatalRecorder) Logf(string, ...any) {}

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}

func TestAssertGoldenFileMatches(t *testing.T) {
	t.Setenv("UPDATE_GOLDEN", "")
	path := filepath.Join(t.TempDir(), "sample.golden")
	if err := os.WriteFile(path, []byte("hello\nworld"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rec := &fatalRecorder{TB: t}
	AssertGoldenFile(rec, path, "hello\nworld")
	if rec.failed {
		t.Fatalf("expected match, got failure: %s", rec.msg)
	}
}

func TestAssertGoldenFileMismatchFails(t *testing.T) {
	t.Setenv("UPDATE_GOLDEN", "")
	path := filepath.Join(t.TempDir(), "sample.golden")
	if err := os.WriteFile(path, []byte("hello\nworld"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rec := &fatalRecorder{TB: t}
	AssertGoldenFile(rec, path, "hello\nthere")
	if !rec.failed || !strings.Contains(rec.msg, "output mismatch") {
		t.Fatalf("expected mismatch failure, got failed=%v msg=%q", rec.failed, rec.msg)
	}
}

func TestAssertGoldenFileMissingFails(t *testing.T) {
	t.Setenv("UPDATE_GOLDEN", "")
	path := filepath.Join(t.TempDir(), "missing.golden")
	rec := &fatalRecorder{TB: t}
	AssertGoldenFile(rec, path, "anything")
	if !rec.failed || !strings.Contains(rec.msg, "UPDATE_GOLDEN") {
		t.Fatalf("expected missing golden to fail, got failed=%v msg=%q", rec.failed, rec.msg)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected golden not to be created, stat err=%v", err)
	}
}

func TestAssertGoldenFileUpdateWrites(t *testing.T) {
	t.Setenv("UPDATE_GOLDEN", "1")
	path := filepath.Join(t.TempDir(), "nested", "new.golden")
	rec := &fatalRecorder{TB: t}
	AssertGoldenFile(rec, path, "fresh")
	if rec.failed {
		t.Fatalf("unexpected failure: %s", rec.msg)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "fresh" {
		t.Fatalf("expected golden written, got %q (%v)", data, err)
	}
}
