package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yaklabco/rangelight/pkg/runner"
)

func TestResolvePaths_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.go", "package b\n")
	writeFile(t, dir, "a.go", "package a\n")

	ctx := context.Background()
	got, err := runner.ResolvePaths(ctx, runner.Options{
		Paths:      []string{"b.go", "a.go"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("ResolvePaths() error = %v", err)
	}

	want := []string{filepath.Join(dir, "b.go"), filepath.Join(dir, "a.go")}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolvePaths_Deduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	abs := writeFile(t, dir, "a.go", "package a\n")

	ctx := context.Background()
	got, err := runner.ResolvePaths(ctx, runner.Options{
		// The same file by relative and absolute path.
		Paths:      []string{"a.go", abs, "./a.go"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("ResolvePaths() error = %v", err)
	}

	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (%v)", len(got), got)
	}
}

func TestResolvePaths_AbsolutePathIgnoresWorkingDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	abs := writeFile(t, dir, "a.go", "package a\n")

	ctx := context.Background()
	got, err := runner.ResolvePaths(ctx, runner.Options{
		Paths:      []string{abs},
		WorkingDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("ResolvePaths() error = %v", err)
	}

	if len(got) != 1 || got[0] != abs {
		t.Errorf("got %v, want [%s]", got, abs)
	}
}

func TestResolvePaths_EmptyInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, err := runner.ResolvePaths(ctx, runner.Options{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatalf("ResolvePaths() error = %v", err)
	}

	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestResolvePaths_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.ResolvePaths(ctx, runner.Options{
		Paths:      []string{"a.go"},
		WorkingDir: dir,
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
