package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindFiles Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindFiles:
		return "files"
	}
	return "unknown"
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// ScanFunc produces one archive snapshot.
type ScanFunc func(dir string) (archive.Snapshot, error)

// Watcher polls an archive directory at a fixed interval and publishes events.
type Watcher struct {
	dir      string
	interval time.Duration
	scan     ScanFunc
	refresh  chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that scans dir every interval.
func NewWatcher(dir string, interval time.Duration) *Watcher {
	return NewWatcherWithScanner(dir, interval, archive.Scan)
}

// NewWatcherWithScanner is NewWatcher with a custom scan function.
func NewWatcherWithScanner(dir string, interval time.Duration, scan ScanFunc) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:      dir,
		interval: interval,
		scan:     scan,
		refresh:  make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startFilePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks for a scan ahead of the next tick. Requests coalesce.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. Pollers exit after their current scan completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startFilePoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindFiles, func(ctx context.Context) (interface{}, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		snap, err := w.scan(w.dir)
		if err != nil {
			events.Archive.ScanError(w.dir, err)
			return nil, err
		}
		events.Archive.Scan(w.dir, len(snap.Files))
		return snap, nil
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	interval := w.interval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		case <-w.refresh:
		}
		if !emit() {
			return
		}
	}
}
