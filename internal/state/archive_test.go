package state

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/lapse-browser/internal/archive"
)

func TestArchiveStoreTotals(t *testing.T) {
	s := NewArchiveStore("/tmp/a")
	if s.Dir() != "/tmp/a" {
		t.Fatalf("expected dir /tmp/a, got %q", s.Dir())
	}
	s.SetTotalBytes(10)
	s.AddBytes(5)
	s.AddBytes(-100)
	if s.TotalBytes() != 0 {
		t.Fatalf("expected total clamped to 0, got %d", s.TotalBytes())
	}
	now := time.Now()
	s.SetScannedAt(now)
	if !s.ScannedAt().Equal(now) {
		t.Fatalf("expected scan time preserved")
	}
	boom := errors.New("boom")
	s.SetLastError(boom)
	if !errors.Is(s.LastError(), boom) {
		t.Fatalf("expected last error stored")
	}
}

func TestFileSizeIgnoresFolders(t *testing.T) {
	if FileSize(archive.File{IsDir: true, Size: 4096}) != 0 {
		t.Fatal("expected folders to count as zero bytes")
	}
	if FileSize(archive.File{Size: 12}) != 12 {
		t.Fatal("expected file size")
	}
}
