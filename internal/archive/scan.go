package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Scan lists the top level of dir. Hidden entries are skipped.
func Scan(dir string) (Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read archive dir %s: %w", dir, err)
	}
	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// removed between ReadDir and Info
				continue
			}
			return Snapshot{}, fmt.Errorf("stat %s: %w", name, err)
		}
		f := File{
			Name:    name,
			Path:    filepath.Join(dir, name),
			ModTime: info.ModTime(),
			IsDir:   entry.IsDir(),
		}
		if f.IsDir {
			f.Kind = KindFolder
		} else {
			f.Size = info.Size()
			f.Kind = KindOf(name)
		}
		files = append(files, f)
	}
	return Snapshot{Dir: dir, Files: files, ScannedAt: time.Now()}, nil
}

// Delete removes one archive file. Folders are refused.
func Delete(f File) error {
	if f.IsDir {
		return fmt.Errorf("refusing to delete folder %s", f.Name)
	}
	if err := os.Remove(f.Path); err != nil {
		return fmt.Errorf("delete %s: %w", f.Name, err)
	}
	return nil
}
