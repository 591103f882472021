package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/backend"
	"github.com/atomicstack/lapse-browser/internal/logging"
	"github.com/atomicstack/lapse-browser/internal/testutil"
)

func quietLogs(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
}

// fakeFiles returns n files named f00.jpg, f01.jpg... whose sizes grow with
// their index and whose ages shrink with it.
func fakeFiles(n int) []archive.File {
	files := make([]archive.File, n)
	for i := range files {
		name := fmt.Sprintf("f%02d.jpg", i)
		files[i] = archive.File{
			Name:    name,
			Path:    "/archive/" + name,
			Size:    int64((i + 1) * 100),
			ModTime: testutil.Base.Add(-time.Duration(n-i) * time.Hour),
			Kind:    archive.KindOf(name),
		}
	}
	return files
}

func snapshotMsg(files ...archive.File) backendEventMsg {
	return backendEventMsg{event: backend.Event{
		Kind: backend.KindFiles,
		Data: archive.Snapshot{Dir: "/archive", Files: files, ScannedAt: testutil.Base},
	}}
}

func newTestHarness(t *testing.T, n int, opts Options) *Harness {
	t.Helper()
	quietLogs(t)
	m := NewModel(opts, nil)
	m.now = func() time.Time { return testutil.Base }
	h := NewHarness(m)
	h.Send(snapshotMsg(fakeFiles(n)...))
	return h
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{Dir: "/archive"}, nil)
	if m.Init() != nil {
		t.Fatalf("expected no init command without a watcher")
	}
	files := m.Files()
	if files.PageSize() != 10 {
		t.Fatalf("expected default page size 10, got %d", files.PageSize())
	}
	if files.PagerWindow() != 11 {
		t.Fatalf("expected default pager window 11, got %d", files.PagerWindow())
	}
	if files.SortColumn() != archive.ColumnName || !files.SortAscending() {
		t.Fatalf("expected ascending name sort, got %s asc=%v", files.SortColumn(), files.SortAscending())
	}
	if m.Store().Dir() != "/archive" {
		t.Fatalf("expected store dir /archive, got %q", m.Store().Dir())
	}
}

func TestSnapshotPopulatesList(t *testing.T) {
	h := newTestHarness(t, 25, Options{})
	m := h.Model()
	if m.loading {
		t.Fatalf("expected loading cleared after first snapshot")
	}
	if got := m.Files().Len(); got != 25 {
		t.Fatalf("expected 25 files, got %d", got)
	}
	if got := m.Store().TotalBytes(); got != 32500 {
		t.Fatalf("expected total 32500 bytes, got %d", got)
	}

	h.Send(snapshotMsg(fakeFiles(3)...))
	if got := m.Files().Len(); got != 3 {
		t.Fatalf("expected merge to drop vanished files, got %d", got)
	}
}

func TestBackendDoneDropsWatcher(t *testing.T) {
	quietLogs(t)
	w := backend.NewWatcherWithScanner(t.TempDir(), time.Hour, func(dir string) (archive.Snapshot, error) {
		return archive.Snapshot{Dir: dir}, nil
	})
	m := NewModel(Options{}, w)
	if m.Init() == nil {
		t.Fatalf("expected init to wait for backend events")
	}
	w.Stop()
	m.Update(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected watcher dropped after its channel closed")
	}
}

func TestWindowSizeRespectsFixedWidth(t *testing.T) {
	h := newTestHarness(t, 3, Options{Width: 40})
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	m := h.Model()
	if m.width != 40 {
		t.Fatalf("expected fixed width kept, got %d", m.width)
	}
	if m.height != 30 {
		t.Fatalf("expected height from resize, got %d", m.height)
	}
}

func TestUnknownMessageIgnored(t *testing.T) {
	h := newTestHarness(t, 3, Options{})
	type stray struct{}
	h.Send(stray{})
	if h.Model().Files().Len() != 3 {
		t.Fatalf("expected list untouched")
	}
}

func TestScanErrorKeepsFiles(t *testing.T) {
	h := newTestHarness(t, 4, Options{})
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindFiles, Err: fmt.Errorf("permission denied")}})
	if h.Model().Files().Len() != 4 {
		t.Fatalf("expected files kept after scan error")
	}
	if view := h.View(); !strings.Contains(view, "Scan failed: permission denied") {
		t.Fatalf("expected scan error in view, got:\n%s", view)
	}
	h.Send(snapshotMsg(fakeFiles(4)...))
	if view := h.View(); strings.Contains(view, "Scan failed") {
		t.Fatalf("expected scan error cleared, got:\n%s", view)
	}
}

func TestListChangesLeaveCursorToBatchClamp(t *testing.T) {
	h := newTestHarness(t, 25, Options{})
	m := h.Model()
	m.cursor.Row = 7
	m.Files().SetSelected("f00.jpg", true)
	m.Files().Remove("f09.jpg")
	if m.cursor.Row != 7 {
		t.Fatalf("expected per-change notifications to leave the cursor alone, got %d", m.cursor.Row)
	}

	h.Press("end")
	m.cursor.Row = 4
	h.Send(snapshotMsg(fakeFiles(22)...))
	if m.Files().PageIndex() != 2 || m.cursor.Row != 1 {
		t.Fatalf("expected rescan to clamp cursor to page 2 row 1, got page %d row %d", m.Files().PageIndex(), m.cursor.Row)
	}
}
