package dispatcher

import (
	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/backend"
	"github.com/atomicstack/lapse-browser/internal/listview"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
	"github.com/atomicstack/lapse-browser/internal/state"
)

// FileList is the list the dispatcher keeps in sync with the archive.
type FileList = listview.List[archive.File, archive.File]

type Result struct {
	FilesUpdated bool
	Added        int
	Removed      int
	Replaced     int
	Err          error
}

type Dispatcher struct {
	files  *FileList
	store  state.ArchiveStore
	synced bool
	// selectNew starts newly discovered files selected once the initial
	// listing has been loaded.
	selectNew bool
}

func New(files *FileList, store state.ArchiveStore) *Dispatcher {
	return &Dispatcher{files: files, store: store}
}

// SelectNewFiles controls whether files appearing after the first scan start
// selected.
func (d *Dispatcher) SelectNewFiles(on bool) {
	d.selectNew = on
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		d.store.SetLastError(evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindFiles:
		if snapshot, ok := evt.Data.(archive.Snapshot); ok {
			d.store.SetLastError(nil)
			d.store.SetDir(snapshot.Dir)
			d.store.SetScannedAt(snapshot.ScannedAt)
			if !d.synced {
				d.load(snapshot.Files)
				res.Added = len(snapshot.Files)
			} else {
				res.Added, res.Removed, res.Replaced = d.merge(snapshot.Files)
			}
			d.synced = true
			res.FilesUpdated = true
			events.List.Sync(d.files.Name(), res.Added, res.Removed, res.Replaced)
		}
	}
	return res
}

func (d *Dispatcher) load(files []archive.File) {
	var total int64
	d.files.Set(files, func(item *listview.Item[archive.File]) {
		total += state.FileSize(item.Value)
	})
	d.store.SetTotalBytes(total)
}

// merge applies the difference between the list and a fresh scan as
// individual add, remove and replace operations.
func (d *Dispatcher) merge(files []archive.File) (added, removed, replaced int) {
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		id := archive.FileID(f)
		seen[id] = struct{}{}
		existing := d.files.Get(id)
		switch {
		case existing == nil:
			if d.selectNew {
				d.files.AddSelected(f)
			} else {
				d.files.Add(f)
			}
			d.store.AddBytes(state.FileSize(f))
			added++
		case existing.Value.Changed(f):
			if prev := d.files.Replace(f); prev != nil {
				d.store.AddBytes(state.FileSize(f) - state.FileSize(prev.Value))
				replaced++
			}
		}
	}
	for _, item := range d.files.Items() {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		if gone := d.files.Remove(item.ID); gone != nil {
			d.store.AddBytes(-state.FileSize(gone.Value))
			removed++
		}
	}
	return added, removed, replaced
}

// Forget removes a file the host deleted itself, keeping totals in step.
func (d *Dispatcher) Forget(id string) *listview.Item[archive.File] {
	gone := d.files.Remove(id)
	if gone != nil {
		d.store.AddBytes(-state.FileSize(gone.Value))
	}
	return gone
}
