package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lapse-browser/internal/listview"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String())
	if m.prompt != nil {
		return m.handlePromptKey(keyMsg)
	}
	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.moveUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.moveDown()
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.files.PrevPage()
	case key.Matches(keyMsg, m.keys.NextPage):
		m.files.NextPage()
	case key.Matches(keyMsg, m.keys.FirstPage):
		m.files.FirstPage()
	case key.Matches(keyMsg, m.keys.LastPage):
		m.files.LastPage()
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleCursorItem()
	case key.Matches(keyMsg, m.keys.SelectAll):
		m.files.ToggleScope(listview.ScopeAll)
	case key.Matches(keyMsg, m.keys.SelectPage):
		m.files.ToggleScope(listview.ScopePage)
	case key.Matches(keyMsg, m.keys.Sort):
		m.cycleSort()
	case key.Matches(keyMsg, m.keys.Reverse):
		m.files.SetSort(m.files.SortColumn(), !m.files.SortAscending())
	case key.Matches(keyMsg, m.keys.Grow):
		m.files.CyclePageSize(true)
	case key.Matches(keyMsg, m.keys.Shrink):
		m.files.CyclePageSize(false)
	case key.Matches(keyMsg, m.keys.Delete):
		return m.confirmDelete()
	case key.Matches(keyMsg, m.keys.Refresh):
		if m.backend != nil {
			m.backend.Refresh()
			m.setInfo(fmt.Sprintf("Rescanning %s", m.store.Dir()))
		}
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// moveUp steps the cursor, spilling onto the previous page at the top row.
func (m *Model) moveUp() {
	n := len(m.files.CurrentPage())
	m.cursor.Clamp(n)
	if !m.cursor.AtTop() {
		m.cursor.Up(n)
		events.UI.Cursor(m.files.PageIndex(), m.cursor.Row)
		return
	}
	if m.files.PrevPage() {
		m.cursor.End(len(m.files.CurrentPage()))
		events.UI.Cursor(m.files.PageIndex(), m.cursor.Row)
	}
}

func (m *Model) moveDown() {
	n := len(m.files.CurrentPage())
	m.cursor.Clamp(n)
	if !m.cursor.AtBottom(n) {
		m.cursor.Down(n)
		events.UI.Cursor(m.files.PageIndex(), m.cursor.Row)
		return
	}
	if m.files.NextPage() {
		m.cursor.Home(len(m.files.CurrentPage()))
		events.UI.Cursor(m.files.PageIndex(), m.cursor.Row)
	}
}

func (m *Model) toggleCursorItem() {
	item := m.cursorItem()
	if item == nil || item.Disabled {
		return
	}
	m.files.Toggle(item.ID)
}

// cycleSort advances the sort to the next visible sortable column. A hidden
// sort key restarts the cycle at the first column.
func (m *Model) cycleSort() {
	var sortable []string
	current := -1
	for _, col := range m.files.VisibleColumns() {
		if !col.Sortable {
			continue
		}
		if m.files.IsSortedBy(col.ID) {
			current = len(sortable)
		}
		sortable = append(sortable, col.ID)
	}
	if len(sortable) == 0 {
		return
	}
	m.files.ToggleSort(sortable[(current+1)%len(sortable)])
}
