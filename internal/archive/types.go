package archive

import (
	"path/filepath"
	"strings"
	"time"
)

// Kind classifies archive entries by what the timelapse plugin produced.
type Kind string

const (
	KindSnapshot  Kind = "snapshot"
	KindTimelapse Kind = "timelapse"
	KindArchive   Kind = "archive"
	KindFolder    Kind = "folder"
	KindOther     Kind = "other"
)

var extensionKinds = map[string]Kind{
	".jpg":  KindSnapshot,
	".jpeg": KindSnapshot,
	".png":  KindSnapshot,
	".bmp":  KindSnapshot,
	".mp4":  KindTimelapse,
	".mkv":  KindTimelapse,
	".avi":  KindTimelapse,
	".mpeg": KindTimelapse,
	".gif":  KindTimelapse,
	".zip":  KindArchive,
}

// KindOf returns the kind implied by name's extension.
func KindOf(name string) Kind {
	if kind, ok := extensionKinds[strings.ToLower(filepath.Ext(name))]; ok {
		return kind
	}
	return KindOther
}

// File describes one entry of an archive directory.
type File struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Kind    Kind
	IsDir   bool
}

// FileID is the list identifier of a file.
func FileID(f File) string {
	return f.Name
}

// Changed reports whether f differs from other in a way worth re-rendering.
func (f File) Changed(other File) bool {
	return f.Size != other.Size || !f.ModTime.Equal(other.ModTime) || f.IsDir != other.IsDir
}

// Snapshot is the result of one directory scan.
type Snapshot struct {
	Dir       string
	Files     []File
	ScannedAt time.Time
}
