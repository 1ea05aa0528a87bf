package spectrum

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}

	r.Register("/data/b.txt")
	r.Register("/data/a.txt")
	r.Register("/other/a.txt") // same base name replaces

	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
	if got := r.Get("a.txt"); got != "/other/a.txt" {
		t.Errorf("Get(a.txt) = %q, want /other/a.txt", got)
	}
	if got := r.Get("missing.txt"); got != "" {
		t.Errorf("Get(missing.txt) = %q, want empty", got)
	}

	names := r.List()
	if len(names) != 2 || names[0] != "a.txt" || names[1] != "b.txt" {
		t.Errorf("List() = %v, want [a.txt b.txt]", names)
	}

	r.Clear()
	if r.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", r.Count())
	}
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scan1.txt", "scan2.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("0 0\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	r := NewRegistry()
	r.Register("stale.txt") // replaced by LoadDir

	n, err := r.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if n != 2 || r.Count() != 2 {
		t.Errorf("LoadDir() = %d files, Count() = %d, want 2 and 2", n, r.Count())
	}
	if r.Get("stale.txt") != "" {
		t.Error("LoadDir() kept stale entry")
	}
}

func TestRegistryLoadDirEmpty(t *testing.T) {
	r := NewRegistry()
	r.Register("keep.txt")

	if _, err := r.LoadDir(t.TempDir()); err == nil {
		t.Fatal("LoadDir() expected error for folder without data files")
	}
	if r.Count() != 1 {
		t.Error("LoadDir() cleared registry on failure")
	}
}
