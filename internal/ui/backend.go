package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lapse-browser/internal/backend"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		events.Archive.ScanError(m.store.Dir(), res.Err)
		return
	}
	if !res.FilesUpdated {
		return
	}
	m.loading = false
	events.Archive.Scan(m.store.Dir(), m.files.Len())
	m.cursor.Clamp(len(m.files.CurrentPage()))
}
