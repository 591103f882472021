package state

import (
	"time"

	"github.com/atomicstack/lapse-browser/internal/archive"
)

// ArchiveStore keeps scan metadata the list itself does not hold.
type ArchiveStore interface {
	Dir() string
	SetDir(string)
	ScannedAt() time.Time
	SetScannedAt(time.Time)
	TotalBytes() int64
	SetTotalBytes(int64)
	AddBytes(int64)
	LastError() error
	SetLastError(error)
}

type archiveStore struct {
	dir        string
	scannedAt  time.Time
	totalBytes int64
	lastErr    error
}

func NewArchiveStore(dir string) ArchiveStore {
	return &archiveStore{dir: dir}
}

func (s *archiveStore) Dir() string {
	return s.dir
}

func (s *archiveStore) SetDir(dir string) {
	s.dir = dir
}

func (s *archiveStore) ScannedAt() time.Time {
	return s.scannedAt
}

func (s *archiveStore) SetScannedAt(t time.Time) {
	s.scannedAt = t
}

func (s *archiveStore) TotalBytes() int64 {
	return s.totalBytes
}

func (s *archiveStore) SetTotalBytes(n int64) {
	s.totalBytes = n
}

func (s *archiveStore) AddBytes(n int64) {
	s.totalBytes += n
	if s.totalBytes < 0 {
		s.totalBytes = 0
	}
}

func (s *archiveStore) LastError() error {
	return s.lastErr
}

func (s *archiveStore) SetLastError(err error) {
	s.lastErr = err
}

// FileSize is the byte count a file contributes to the archive total.
func FileSize(f archive.File) int64 {
	if f.IsDir {
		return 0
	}
	return f.Size
}
