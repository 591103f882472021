package events

import (
	"github.com/atomicstack/lapse-browser/internal/listview"
	"github.com/atomicstack/lapse-browser/internal/logging"
)

type ListTracer struct{}

var List = ListTracer{}

// Change records a completed list mutation.
func (ListTracer) Change(c listview.Change) {
	var payload interface{}
	if c.ID != "" {
		payload = map[string]interface{}{"id": c.ID}
	}
	logging.TraceList(c.List, "list."+c.Kind.String(), payload)
}

// Diagnostics returns a sink recording configuration problems the named list
// degrades around.
func (ListTracer) Diagnostics(list string) func(error) {
	return func(err error) {
		if err == nil {
			return
		}
		logging.ListError(list, err)
		logging.TraceList(list, "list.diagnostic", map[string]interface{}{"error": err.Error()})
	}
}

func (ListTracer) Sync(list string, added, removed, replaced int) {
	logging.TraceList(list, "list.sync", map[string]interface{}{
		"added":    added,
		"removed":  removed,
		"replaced": replaced,
	})
}
