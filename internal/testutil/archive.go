package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Fixture describes one file written by WriteArchive.
type Fixture struct {
	Name string
	Size int
	// Age is subtracted from Base to set the file's modification time.
	Age time.Duration
	Dir bool
}

// Base is the reference time fixtures are aged from.
var Base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// WriteArchive creates a temporary archive directory holding fixtures.
func WriteArchive(t *testing.T, fixtures ...Fixture) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range fixtures {
		AddFile(t, dir, f)
	}
	return dir
}

// AddFile writes one fixture into dir.
func AddFile(t *testing.T, dir string, f Fixture) string {
	t.Helper()
	path := filepath.Join(dir, f.Name)
	if f.Dir {
		if err := os.MkdirAll(path, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
	} else if err := os.WriteFile(path, make([]byte, f.Size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	mod := Base.Add(-f.Age)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
	return path
}

// RemoveFile deletes name from dir.
func RemoveFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		t.Fatalf("remove %s: %v", name, err)
	}
}
