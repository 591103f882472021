package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/logging"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
	"github.com/atomicstack/lapse-browser/internal/ui/command"
)

// deleteFunc removes one file; tests replace it.
var deleteFunc = archive.Delete

type deleteResultMsg struct {
	deleted []string
	failed  []string
	err     error
}

// startDelete disables the targets and queues their removal on the command
// bus. The rows stay visible until the result arrives.
func (m *Model) startDelete(targets []archive.File) tea.Cmd {
	ids := make([]string, len(targets))
	for i, f := range targets {
		ids[i] = archive.FileID(f)
		m.files.SetDisabled(ids[i], true)
	}
	events.Archive.Delete(ids)
	files := append([]archive.File(nil), targets...)
	return m.bus.Execute(command.Request{
		ID:    "archive:delete",
		Label: fmt.Sprintf("delete %s", describeTargets(files)),
		Run: func() tea.Msg {
			var res deleteResultMsg
			var errs []error
			for _, f := range files {
				id := archive.FileID(f)
				if err := deleteFunc(f); err != nil {
					res.failed = append(res.failed, id)
					errs = append(errs, err)
					continue
				}
				res.deleted = append(res.deleted, id)
			}
			res.err = errors.Join(errs...)
			return res
		},
	})
}

func (m *Model) handleDeleteResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(deleteResultMsg)
	if !ok {
		return nil
	}
	for _, id := range result.deleted {
		m.dispatcher.Forget(id)
	}
	for _, id := range result.failed {
		m.files.SetDisabled(id, false)
	}
	m.cursor.Clamp(len(m.files.CurrentPage()))
	if m.backend != nil {
		m.backend.Refresh()
	}
	if result.err != nil {
		logging.Error(result.err)
		events.Action.Error(result.err)
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		return nil
	}
	info := fmt.Sprintf("Deleted %d file(s)", len(result.deleted))
	events.Action.Success(info)
	if m.verbose {
		m.setInfo(info)
	}
	return nil
}
