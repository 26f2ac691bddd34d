package searchpath_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-cat/over/internal/searchpath"
)

func TestListDirsOrderAndDedup(t *testing.T) {
	t.Setenv("OVER_INCLUDE_PATH", "")

	l := searchpath.New("/a", "/b")
	l.Add("/c", "/a")

	got := l.Dirs()
	want := []string{"/c", "/a", "/b"}

	if len(got) != len(want) {
		t.Fatalf("Dirs() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dirs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListPicksUpEnvironmentVariable(t *testing.T) {
	t.Setenv("OVER_INCLUDE_PATH", "/env-dir")

	l := searchpath.New()

	got := l.Dirs()
	if len(got) != 1 || got[0] != "/env-dir" {
		t.Errorf("Dirs() = %v, want [/env-dir]", got)
	}
}

func TestLoaderFallsBackThroughSearchPath(t *testing.T) {
	t.Setenv("OVER_INCLUDE_PATH", "")

	dir := t.TempDir()
	target := filepath.Join(dir, "shared.over")

	if err := os.WriteFile(target, []byte("x: 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := searchpath.Loader{List: searchpath.New(dir)}

	canonical, data, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "root.over"), "shared.over")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if canonical == "" || string(data) != "x: 1" {
		t.Errorf("got canonical=%q data=%q", canonical, data)
	}
}

func TestLoaderReturnsErrorWhenNotFoundAnywhere(t *testing.T) {
	t.Setenv("OVER_INCLUDE_PATH", "")

	loader := searchpath.Loader{List: searchpath.New(t.TempDir())}

	_, _, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "root.over"), "missing.over")
	if err == nil {
		t.Fatal("expected an error for a file that exists nowhere in the search path")
	}
}
